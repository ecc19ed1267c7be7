package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is the credential file podscan reads from the working
// directory, matching where the tool is usually invoked.
const DefaultPath = "podscan.toml"

// Credentials for the PodcastIndex API.
type Credentials struct {
	Key    string `toml:"key"`
	Secret string `toml:"secret"`
}

type file struct {
	API Credentials `toml:"api"`
}

// Provider supplies API credentials to the directory client.
type Provider interface {
	Credentials() (Credentials, error)
}

// FileStore keeps credentials in a TOML file. When the file is missing or
// incomplete it prompts on In, saves what was entered, and returns it.
type FileStore struct {
	Path string
	In   io.Reader
	Out  io.Writer
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path, In: os.Stdin, Out: os.Stdout}
}

func (s *FileStore) Credentials() (Credentials, error) {
	creds, err := load(s.Path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Credentials{}, err
	}
	if creds.Key != "" && creds.Secret != "" {
		return creds, nil
	}
	return s.prompt()
}

func load(path string) (Credentials, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Credentials{}, err
	}
	var f file
	if err := toml.Unmarshal(raw, &f); err != nil {
		return Credentials{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f.API, nil
}

func (s *FileStore) prompt() (Credentials, error) {
	fmt.Fprintln(s.Out, "PodcastIndex API credentials not found. Please enter them below:")
	reader := bufio.NewReader(s.In)

	key, err := readLine(reader, s.Out, "API Key: ")
	if err != nil {
		return Credentials{}, err
	}
	secret, err := readLine(reader, s.Out, "API Secret: ")
	if err != nil {
		return Credentials{}, err
	}

	creds := Credentials{Key: key, Secret: secret}
	if err := s.save(creds); err != nil {
		return Credentials{}, err
	}
	return creds, nil
}

func (s *FileStore) save(creds Credentials) error {
	raw, err := toml.Marshal(file{API: creds})
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.Path, raw, 0600); err != nil {
		return fmt.Errorf("saving credentials: %w", err)
	}
	return nil
}

func readLine(r *bufio.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading credentials: %w", err)
	}
	return strings.TrimSpace(line), nil
}
