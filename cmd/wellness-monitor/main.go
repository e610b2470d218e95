// Command wellness-monitor replays a recorded session offline: it prints the
// visualizer bars for a WAV capture, the chat bubbles the recording produces,
// and optionally transcribes the speech and answers it with the companion.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	cli "github.com/spf13/pflag"

	log "log/slog"

	internalagent "github.com/easeaico/wellness-companion/internal/agent"
	"github.com/easeaico/wellness-companion/internal/chat"
	"github.com/easeaico/wellness-companion/internal/config"
	"github.com/easeaico/wellness-companion/internal/emotion"
	"github.com/easeaico/wellness-companion/internal/monitor"
	"github.com/easeaico/wellness-companion/internal/speech"
	"github.com/easeaico/wellness-companion/internal/types"
)

var logLevelMap = map[string]log.Level{
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
}

func main() {
	envFile := cli.StringP("env", "e", ".env", "Env file path")
	logLevel := cli.StringP("log", "l", "info", "Log level")
	wavPath := cli.StringP("wav", "w", "", "Session recording (WAV)")
	bars := cli.IntP("bars", "b", 0, "Number of visualizer bars (default VISUALIZER_BARS)")
	transcribe := cli.BoolP("transcribe", "t", false, "Transcribe the recording and reply to it")
	text := cli.StringP("text", "m", "", "Reply to a typed message instead of a recording")
	cli.Parse()

	log.SetDefault(log.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level: logLevelMap[*logLevel],
	})))

	os.Setenv("ENV_FILE", *envFile)
	cfg := config.Load()
	if *bars <= 0 {
		*bars = cfg.VisualizerBars
	}

	engine := emotion.NewEngine()
	handler := chat.NewHandler(engine, nil, cfg.ReplyDelay, cfg.AnalysisDelay)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if *text != "" {
		if err := reply(ctx, cfg, handler, engine, *text); err != nil {
			log.Error("Failed to reply", "err", err)
			os.Exit(1)
		}
		return
	}

	if *wavPath == "" {
		fmt.Fprintln(os.Stderr, "either --wav or --text is required")
		cli.Usage()
		os.Exit(2)
	}

	clip, err := monitor.LoadWAV(*wavPath)
	if err != nil {
		log.Error("Failed to load recording", "path", *wavPath, "err", err)
		os.Exit(1)
	}
	rec := clip.Recording
	log.Info("Loaded recording", "duration", rec.Duration, "rate", rec.SampleRate, "channels", rec.Channels, "peak", rec.Peak)

	spectrum := monitor.SpectrumFromPCM(clip.Samples, monitor.DefaultBinCount)
	printBars(monitor.Bars(spectrum, *bars))

	printMessages(handler.HandleRecording(ctx, rec))

	if !*transcribe {
		return
	}

	tr, err := speech.NewOpenAITranscriber(cfg.OpenAIAPIKey, cfg.TranscribeModel)
	if err != nil {
		log.Error("Failed to init transcriber", "err", err)
		os.Exit(1)
	}
	transcript, err := tr.Transcribe(ctx, rec.Path)
	if err != nil {
		log.Error("Failed to transcribe", "err", err)
		os.Exit(1)
	}
	log.Info("Transcribed", "text", transcript)

	if err := reply(ctx, cfg, handler, engine, transcript); err != nil {
		log.Error("Failed to reply", "err", err)
		os.Exit(1)
	}
}

func reply(ctx context.Context, cfg config.Config, handler *chat.Handler, engine *emotion.Engine, text string) error {
	companion, err := internalagent.NewCompanionAgent(handler, engine)
	if err != nil {
		return err
	}
	conv, err := internalagent.NewConversation(cfg.AppName, companion)
	if err != nil {
		return err
	}

	replies, err := conv.Send(ctx, "offline", "offline", text)
	if err != nil {
		return err
	}

	log.Info("──────── companion ────────")
	log.Info("you:  ", "text", text)
	for _, r := range replies {
		log.Info("bot:  ", "text", r)
	}
	log.Info("───────────────────────────")
	return nil
}

func printBars(heights []float64) {
	const width = 50
	for i, h := range heights {
		n := int(h / 50 * width)
		fmt.Printf("%3d %-*s %5.1f\n", i, width, strings.Repeat("█", n), h)
	}
}

func printMessages(msgs []types.Message) {
	for _, m := range msgs {
		line := fmt.Sprintf("[%s] %s", m.Sender, m.Text)
		if m.Attachment != "" {
			line += " (" + m.Attachment + ")"
		}
		if m.Delay > 0 {
			line += fmt.Sprintf(" +%s", m.Delay)
		}
		fmt.Println(line)
	}
}
