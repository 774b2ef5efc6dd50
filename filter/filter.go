// Package filter compiles expr-lang expressions into predicates over bot
// listings, used by the CLI to narrow down listing pages client-side.
//
// Expressions see one bot at a time through a flat environment:
//
//	server_count > 100 and approved
//	contains(username, "music") or featured
//	owner_count > 1 and daysSince(created) < 30
package filter

import (
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/spacelist/go-spacelist/spacelist"
)

// Filter is a compiled predicate over bots. It is safe for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression into an executable filter
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(), // Allow bot properties
		expr.AsBool(),                  // Ensure boolean result
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{
		expression: expression,
		program:    program,
	}, nil
}

// Match evaluates the filter against a bot
func (f *Filter) Match(bot spacelist.Bot) (bool, error) {
	result, err := expr.Run(f.program, environment(bot))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			BotID:      bot.ID,
			Reason:     "failed to evaluate expression",
			Err:        err,
		}
	}

	// Result is guaranteed to be bool due to AsBool() during compilation
	return result.(bool), nil
}

// Expression returns the original expression
func (f *Filter) Expression() string {
	return f.expression
}

// helperFunctions builds the static environment used during compilation
func helperFunctions() map[string]any {
	env := make(map[string]any, 16)
	addHelperFunctions(env)
	return env
}

// addHelperFunctions adds all helper functions to the provided map
func addHelperFunctions(env map[string]any) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	// String helpers
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["lower"] = strings.ToLower
	env["now"] = time.Now
}

// environment builds the runtime environment for one bot
func environment(bot spacelist.Bot) map[string]any {
	env := make(map[string]any, 32)
	addHelperFunctions(env)

	env["id"] = bot.ID
	env["username"] = bot.Username
	env["tag"] = bot.Tag()
	env["prefix"] = bot.Prefix
	env["library"] = bot.Library
	env["short_description"] = bot.ShortDescription
	env["server_count"] = bot.ServerCount
	env["shard_count"] = len(bot.Shards)
	env["owner_count"] = len(bot.Owners)
	env["approved"] = bot.Approved
	env["featured"] = bot.Featured
	env["nsfw"] = bot.IsNSFW()
	env["vanity"] = bot.Vanity
	env["created"] = bot.Created()
	env["updated"] = bot.Updated()

	return env
}
