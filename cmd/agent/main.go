package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"conversation-intent-toolkit/config"
	"conversation-intent-toolkit/internal/calendar"
	calendarUC "conversation-intent-toolkit/internal/calendar/usecase"
	"conversation-intent-toolkit/internal/travel"
	travelUC "conversation-intent-toolkit/internal/travel/usecase"
	"conversation-intent-toolkit/pkg/log"
)

// request is one line of input on stdin.
type request struct {
	Text           string `json:"text"`
	ConversationID string `json:"conversation_id,omitempty"`
}

// result is one line of output on stdout. Absent extractor results are
// omitted; Error is set only for malformed input lines.
type result struct {
	ConversationID string        `json:"conversation_id,omitempty"`
	CalendarFile   string        `json:"calendar_file,omitempty"`
	Travel         *travelResult `json:"travel,omitempty"`
	Error          string        `json:"error,omitempty"`
}

type travelResult struct {
	Location      string `json:"location,omitempty"`
	SearchType    string `json:"search_type"`
	EnhancedQuery string `json:"enhanced_query"`
}

// The agent binary runs both extractors over newline-delimited JSON on
// stdin and writes one JSON result per line. It needs no runner: callers
// pipe messages in and decide what to do with the extractor output.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	calUC, err := calendarUC.New(logger, calendarUC.Config{
		OutputDir: cfg.Calendar.OutputDir,
		Timezone:  cfg.Calendar.Timezone,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize calendar extractor: %v", err)
		return
	}
	trvUC := travelUC.New(logger)

	run(ctx, calUC, trvUC, os.Stdin, os.Stdout)
}

func run(ctx context.Context, calUC calendar.UseCase, trvUC travel.UseCase, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	encoder := json.NewEncoder(out)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req request
		if err := json.Unmarshal(line, &req); err != nil {
			_ = encoder.Encode(result{Error: fmt.Sprintf("malformed input: %v", err)})
			continue
		}

		res := result{ConversationID: req.ConversationID}
		if path, ok := calUC.Process(ctx, req.Text); ok {
			res.CalendarFile = path
		}
		if intent, ok := trvUC.Process(ctx, req.Text); ok {
			res.Travel = &travelResult{
				Location:      intent.Location,
				SearchType:    string(intent.SearchType),
				EnhancedQuery: intent.EnhancedQuery,
			}
		}
		_ = encoder.Encode(res)
	}
}
