// Command vntok compiles Vietnamese word lists into binary lexicon automata
// and segments phrases with them.
//
//	vntok compile -in words.txt -out lexicon.dfa
//	vntok segment -config vntok.yaml [phrase ...]
//
// segment reads one phrase per line from stdin when no phrase is given and
// prints one line per phrase, words separated by spaces and the syllables of
// a word joined by underscores.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/vntok/automaton"
	"github.com/katalvlaran/vntok/config"
	"github.com/katalvlaran/vntok/lexicon"
	"github.com/katalvlaran/vntok/segmenter"
)

var errUsage = errors.New("usage: vntok compile|segment [flags]")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		logrus.WithError(err).Fatal("vntok failed")
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "compile":
		return compile(args[1:])
	case "segment":
		return segment(args[1:], stdin, stdout)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func compile(args []string) error {
	fs := flag.NewFlagSet("compile", flag.ContinueOnError)
	in := fs.String("in", "", "word list, one word per line")
	out := fs.String("out", "lexicon.dfa", "output automaton file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("%w: compile needs -in", errUsage)
	}

	words, err := lexicon.ReadWordsFile(*in)
	if err != nil {
		return err
	}
	b := automaton.NewBuilder()
	if err = b.AddAll(words...); err != nil {
		return err
	}
	a := b.Build()
	if err = a.Save(*out); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"words":  b.Len(),
		"states": a.StateCount(),
		"edges":  a.EdgeCount(),
		"out":    *out,
	}).Info("lexicon compiled")

	return nil
}

func segment(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("segment", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "YAML config file")
	lexPath := fs.String("lexicon", "", "compiled lexicon, overrides the config")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *lexPath != "" {
		cfg.LexiconPath = *lexPath
	}
	log := cfg.Logger()

	s, err := newSegmenter(cfg, log)
	if err != nil {
		return err
	}
	defer s.Close()

	w := bufio.NewWriter(stdout)
	defer w.Flush()
	emit := func(phrase string) error {
		words, err := s.Tokenize(phrase)
		if errors.Is(err, segmenter.ErrEmptyPhrase) {
			_, err = fmt.Fprintln(w)
			return err
		}
		if err != nil {
			return err
		}
		for i, word := range words {
			words[i] = strings.ReplaceAll(word, " ", "_")
		}
		_, err = fmt.Fprintln(w, strings.Join(words, " "))

		return err
	}

	if fs.NArg() > 0 {
		for _, p := range fs.Args() {
			if err = emit(p); err != nil {
				return err
			}
		}
		return nil
	}
	sc := bufio.NewScanner(stdin)
	for sc.Scan() {
		if err = emit(sc.Text()); err != nil {
			return err
		}
	}

	return sc.Err()
}

func newSegmenter(cfg config.Config, log logrus.FieldLogger) (*segmenter.Segmenter, error) {
	rec, err := lexicon.NewDFARecognizer(cfg.LexiconPath, lexicon.WithLogger(log))
	if err != nil {
		return nil, err
	}
	opts := []segmenter.Option{segmenter.WithLogger(log)}
	if cfg.UserLexiconPath != "" {
		words, err := lexicon.ReadWordsFile(cfg.UserLexiconPath)
		if err != nil {
			_ = rec.Close()
			return nil, err
		}
		lexOpts := []lexicon.Option{lexicon.WithLogger(log)}
		if cfg.FoldDiacritics {
			lexOpts = append(lexOpts, lexicon.WithFolding())
		}
		opts = append(opts, segmenter.WithUserLexicon(lexicon.NewSetRecognizer(words, lexOpts...)))
	}
	log.WithField("lexicon", cfg.LexiconPath).Debug("lexicon loaded")

	return segmenter.New(rec, opts...)
}
