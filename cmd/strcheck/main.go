// Command strcheck checks strings against one of the supported formats.
//
//	strcheck chinese_tel 13812345678 12812345678
//	cat ids.txt | strcheck -json chinese_id_card
//	strcheck kinds
//
// Exit status is 0 when every value is valid, 1 when any is invalid and 2 on
// usage errors.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/strcheck/pkg/logger"
	"github.com/dmitrymomot/strcheck/pkg/messages"
	"github.com/dmitrymomot/strcheck/pkg/validator"
)

const (
	exitValid   = 0
	exitInvalid = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type result struct {
	Kind    string `json:"kind"`
	Value   string `json:"value"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("strcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	asJSON := fs.Bool("json", false, "print one JSON object per value")
	lang := fs.String("lang", messages.DefaultLanguage, "language of failure messages, e.g. en, zh or zh-CN")
	verbose := fs.Bool("v", false, "debug logging to stderr")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: strcheck [-json] [-lang en] <kind> [value ...]")
		fmt.Fprintln(stderr, "       strcheck kinds")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitValid
		}
		return exitUsage
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := logger.New(
		logger.WithOutput(stderr),
		logger.WithFormat(logger.FormatText),
		logger.WithLevel(level),
	)

	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}
	if fs.Arg(0) == "kinds" {
		for _, k := range validator.Kinds() {
			fmt.Fprintln(stdout, k)
		}
		return exitValid
	}

	kind, err := validator.ParseKind(fs.Arg(0))
	if err != nil {
		log.Error("cannot check values", logger.Error(err))
		return exitUsage
	}

	catalog, err := messages.New()
	if err != nil {
		log.Error("cannot load messages", logger.Error(err))
		return exitUsage
	}
	msgLang := catalog.Match(*lang)

	values := fs.Args()[1:]
	if len(values) == 0 {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			values = append(values, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			log.Error("cannot read stdin", logger.Error(err))
			return exitUsage
		}
	}

	status := exitValid
	enc := json.NewEncoder(stdout)
	for _, value := range values {
		rule, _ := validator.RuleFor(kind, kind.String(), value)
		res := result{Kind: kind.String(), Value: value, Valid: rule.Check()}
		if !res.Valid {
			status = exitInvalid
			res.Message = catalog.Translate(msgLang, rule.Error)
		}
		log.Debug("value checked", logger.Kind(res.Kind), logger.Valid(res.Valid))

		if *asJSON {
			if err := enc.Encode(res); err != nil {
				log.Error("cannot write result", logger.Error(err))
				return exitUsage
			}
			continue
		}
		verdict := "valid"
		if !res.Valid {
			verdict = "invalid"
		}
		fmt.Fprintf(stdout, "%s\t%s\n", verdict, value)
	}
	return status
}
