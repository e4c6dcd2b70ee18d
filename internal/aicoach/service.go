package aicoach

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/TCUnion/power/internal/logger"
	"github.com/TCUnion/power/tcu/bindings"
	"github.com/TCUnion/power/tcu/training"
	"github.com/TCUnion/power/tcu/usage"
)

const (
	// downstream failures never surface as transport errors once the quota
	// check passed; the user gets this instead
	cannedApology = "抱歉，AI 教練暫時無法回應，請稍後再試。Sorry, the AI coach is temporarily unavailable, please try again later."

	restDaySummary = "今日無騎乘紀錄，休息是為了走更長遠的路。"
)

// Service runs the AI-coach flows: quota-gated chat forwarding and
// LLM-generated daily training summaries.
type Service struct {
	gate     *usage.Gate
	usage    usage.Store
	bindings bindings.Store
	training training.Store
	webhook  *WebhookClient
	llm      *OpenAIClient // nil when OPENAI_API_KEY is absent
}

func NewService(gate *usage.Gate, usageStore usage.Store, bindingStore bindings.Store, trainingStore training.Store, webhook *WebhookClient, llm *OpenAIClient) *Service {
	return &Service{
		gate:     gate,
		usage:    usageStore,
		bindings: bindingStore,
		training: trainingStore,
		webhook:  webhook,
		llm:      llm,
	}
}

// runs the quota gate, forwards the message when allowed and records the
// exchange. Returns an error only for unmeterable callers (not bound) or a
// broken identity resolution.
func (s *Service) Chat(ctx context.Context, identity, message string) (*ChatResult, error) {
	decision, err := s.gate.Check(ctx, identity)
	if err != nil {
		return nil, err
	}

	if decision.LimitReached {
		return &ChatResult{
			Answer:       decision.Message,
			LimitReached: true,
			Usage:        UsageInfo{Current: decision.Current, Limit: decision.Limit},
		}, nil
	}

	answer, err := s.webhook.Forward(ctx, decision.StravaID, message)
	if err != nil {
		logger.ErrorErr(err, "webhook forward failed, returning canned reply", "strava_id", decision.StravaID)
		answer = cannedApology
	}

	// best-effort telemetry, never blocks the response
	logErr := s.usage.Append(ctx, &usage.LogEntry{
		StravaID:  decision.StravaID,
		Type:      usage.TypeChat,
		Message:   message,
		Response:  answer,
		CreatedAt: time.Now(),
	})
	if logErr != nil {
		logger.ErrorErr(logErr, "failed to record chat usage", "strava_id", decision.StravaID)
	}

	return &ChatResult{
		Answer: answer,
		Usage:  UsageInfo{Current: decision.Current + 1, Limit: decision.Limit},
	}, nil
}

// reports today's usage against the caller's effective limit
func (s *Service) Usage(ctx context.Context, identity string) (*UsageResult, error) {
	decision, err := s.gate.Check(ctx, identity)
	if err != nil {
		return nil, err
	}

	return &UsageResult{
		Current: decision.Current,
		Limit:   decision.Limit,
		Tier:    string(decision.Tier),
	}, nil
}

// returns the caller's most recent chat exchanges
func (s *Service) History(ctx context.Context, identity string, limit int) ([]usage.LogEntry, error) {
	binding, err := s.gate.ResolveIdentity(ctx, identity)
	if err != nil {
		return nil, err
	}

	return s.usage.Recent(ctx, binding.StravaID, limit)
}

// response payload for a daily summary
type SummaryResult struct {
	Summary string            `json:"summary"`
	Metrics *training.Metrics `json:"metrics,omitempty"`
	Message string            `json:"message,omitempty"`
}

// aggregates one day's activities and writes an LLM-generated training-log
// summary. The log write is best-effort; a generated summary is returned
// even if persisting it fails.
func (s *Service) DailySummary(ctx context.Context, userID, dateStr string) (*SummaryResult, error) {
	if s.llm == nil {
		return nil, fmt.Errorf("OpenAI API key not configured")
	}

	day, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}

	binding, err := s.bindings.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up binding: %w", err)
	}

	if binding == nil {
		return nil, usage.ErrNotBound
	}

	activities, err := s.training.ActivitiesForDay(ctx, binding.StravaID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}

	if len(activities) == 0 {
		return &SummaryResult{
			Message: "No activities found for this date",
			Summary: restDaySummary,
		}, nil
	}

	metrics := aggregate(activities)

	summary, err := s.llm.GenerateSummary(ctx, summaryPrompt(dateStr, metrics))
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	logErr := s.training.UpsertDailyLog(ctx, &training.TrainingLog{
		UserID:  userID,
		Date:    dateStr,
		Summary: summary,
		Metrics: metrics,
	})
	if logErr != nil {
		logger.ErrorErr(logErr, "failed to save training log", "user_id", userID, "date", dateStr)
	}

	return &SummaryResult{Summary: summary, Metrics: &metrics}, nil
}

func aggregate(activities []training.Activity) training.Metrics {
	m := training.Metrics{ActivitiesCount: len(activities)}

	totalTime := 0
	totalDist := 0.0

	for _, a := range activities {
		totalTime += a.MovingTime
		totalDist += a.Distance

		name := a.Name
		if name == "" {
			name = "Unknown Ride"
		}

		m.Details = append(m.Details, fmt.Sprintf("- %s: %.0fmin, %.1fkm",
			name, float64(a.MovingTime)/60, a.Distance/1000))
	}

	m.TotalTimeMin = totalTime / 60
	m.TotalDistanceKM = float64(int(totalDist/1000*10+0.5)) / 10

	return m
}

func summaryPrompt(date string, m training.Metrics) string {
	return fmt.Sprintf(`你是一位專業的自行車教練。請根據這位運動員今天的數據，用繁體中文寫一段簡短的訓練日誌摘要與建議。

日期: %s
總時間: %d 分鐘
總距離: %.1f 公里
活動:
%s

請包含：
1. 訓練量評估
2. 對明天的建議
語氣：專業、鼓勵、簡潔。`, date, m.TotalTimeMin, m.TotalDistanceKM, strings.Join(m.Details, "\n"))
}
