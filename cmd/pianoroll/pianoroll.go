package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/dontillman/piano-roll/internal/decoder"
	"github.com/dontillman/piano-roll/internal/file"
	"github.com/dontillman/piano-roll/internal/version"
)

var (
	c            = flag.String("c", "pianoroll.yml", "config file name (YAML)")
	i            = flag.String("i", "", "input file name (YAML)")
	o            = flag.String("o", "", "output file name; stdout if empty")
	format       = flag.String("format", "", "output format (yaml, text or freq); overrides the config")
	logLevel     = flag.String("log_level", "", "log level (debug, info, warn, error); overrides the config")
	addChecksum  = flag.Bool("add_checksum", false, "automatically add checksum to the input YAML")
	printVersion = flag.Bool("version", false, "print the version and exit")
	byteaInput   = flag.String("encode_bytea", "", "if set, write this MIDI file in PostgreSQL bytea hex format and exit")
)

// passphraseEnv names the environment variable to take the passphrase from.
const passphraseEnv = "PIANOROLL_PASSPHRASE"

func passphrase() (string, error) {
	if pw, ok := os.LookupEnv(passphraseEnv); ok {
		return pw, nil
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("stdin is not a terminal and %v is not set", passphraseEnv)
	}
	fmt.Fprint(os.Stderr, "Passphrase: ")
	pw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

func setLogLevel(level string) error {
	if level == "" {
		return nil
	}
	l, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(l)
	return nil
}

// writeOutput calls write with the -o file, or stdout.
func writeOutput(write func(w io.Writer) error) (err error) {
	var w io.Writer = os.Stdout
	if *o != "" {
		var f *os.File
		f, err = os.Create(*o)
		if err != nil {
			return fmt.Errorf("could not create %v: %w", *o, err)
		}
		defer func() {
			closeErr := f.Close()
			if closeErr != nil && err == nil {
				err = closeErr
			}
		}()
		w = f
	}
	return write(w)
}

// encodeBytea writes the named file in PostgreSQL bytea hex format.
func encodeBytea(name string) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	return writeOutput(func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s\n", file.EncodeBytea(data))
		return err
	})
}

func Main() error {
	if *printVersion {
		fmt.Println(version.Version())
		return nil
	}
	if *byteaInput != "" {
		err := encodeBytea(*byteaInput)
		if err != nil {
			return fmt.Errorf("failed to encode %v: %w", *byteaInput, err)
		}
		return nil
	}
	if *i == "" {
		return errors.New("missing -i")
	}

	err := setLogLevel(*logLevel)
	if err != nil {
		return fmt.Errorf("invalid -log_level: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	fsys := os.DirFS(cwd)

	config, err := file.ReadConfig(fsys, *c)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if *logLevel == "" {
		err := setLogLevel(config.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log_level in %v: %w", *c, err)
		}
	}

	options, err := file.ReadOptions(fsys, *i)
	if err != nil {
		return fmt.Errorf("failed to read options: %w", err)
	}

	wantChecksum := options.InputFileSHA256 == ""

	notes, err := file.Process(fsys, config, options, passphrase)
	if err != nil {
		return fmt.Errorf("failed to process: %w", err)
	}
	log.Debug("decoded", "file", *i, "notes", len(notes), "end", decoder.End(notes))

	outputFormat := config.OutputFormat
	if *format != "" {
		outputFormat = *format
	}
	err = writeOutput(func(w io.Writer) error {
		return file.WriteNotes(w, notes, outputFormat)
	})
	if err != nil {
		return fmt.Errorf("failed to write notes: %w", err)
	}

	if wantChecksum && *addChecksum && options.InputFileSHA256 != "" {
		err := file.WriteOptions(*i, options)
		if err != nil {
			return fmt.Errorf("failed to write %v: %w", *i, err)
		}
		log.Info("added checksum", "file", *i)
	}

	return nil
}

func main() {
	log.SetReportTimestamp(false)
	log.SetOutput(os.Stderr)
	flag.Parse()
	err := Main()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
