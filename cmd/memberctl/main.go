package main

import (
	"context"
	"fmt"
	"os"

	"github.com/TCUnion/power/internal/config"
	"github.com/TCUnion/power/internal/logger"
	"github.com/TCUnion/power/internal/supabase"
	"github.com/TCUnion/power/tcu/bindings"
	"github.com/TCUnion/power/tcu/members"
	"github.com/TCUnion/power/tcu/settings"
	"github.com/TCUnion/power/tcu/usage"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: memberctl <command> [options]")
		fmt.Println("Commands:")
		fmt.Println("  member <email-or-account>   - look up a member record")
		fmt.Println("  binding <strava-id>         - look up a binding and its member")
		fmt.Println("  limits                      - show effective AI usage limits")
		fmt.Println("  usage <strava-id>           - show today's AI usage for an athlete")
		fmt.Println("  setup-test-user <strava-id> - create a test binding")
		os.Exit(1)
	}

	command := os.Args[1]

	// load environment variables
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	client := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseKey)
	ctx := context.Background()

	deps := &deps{
		bindings: bindings.NewSupabaseStore(client),
		members:  members.NewSupabaseStore(client),
		settings: settings.NewSupabaseStore(client),
		usage:    usage.NewSupabaseStore(client),
	}

	// route to appropriate command
	switch command {
	case "member":
		requireArg(3, "member <email-or-account>")
		if err := lookupMember(ctx, deps, os.Args[2]); err != nil {
			logger.Fatal("member lookup failed", "error", err)
		}

	case "binding":
		requireArg(3, "binding <strava-id>")
		if err := lookupBinding(ctx, deps, os.Args[2]); err != nil {
			logger.Fatal("binding lookup failed", "error", err)
		}

	case "limits":
		if err := showLimits(ctx, deps); err != nil {
			logger.Fatal("limits lookup failed", "error", err)
		}

	case "usage":
		requireArg(3, "usage <strava-id>")
		if err := showUsage(ctx, deps, os.Args[2]); err != nil {
			logger.Fatal("usage lookup failed", "error", err)
		}

	case "setup-test-user":
		requireArg(3, "setup-test-user <strava-id>")
		if err := setupTestUser(ctx, deps, os.Args[2]); err != nil {
			logger.Fatal("test user setup failed", "error", err)
		}

	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}

type deps struct {
	bindings bindings.Store
	members  members.Store
	settings settings.Store
	usage    usage.Store
}

func requireArg(n int, usageLine string) {
	if len(os.Args) < n {
		fmt.Printf("Usage: memberctl %s\n", usageLine)
		os.Exit(1)
	}
}
