package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/propertypro/ppai/internal/domain"
	"github.com/propertypro/ppai/internal/ports"
)

var ErrUnavailable = errors.New("pass command unavailable")

const notInStoreMarker = "is not in the password store"

type runFunc func(ctx context.Context, input string, args ...string) (stdout string, stderr string, err error)

// Store keeps tokens in the pass password manager. A "scheme://a/b" key maps to the
// entry "scheme/a/b".
type Store struct {
	run runFunc
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{run: runPassCommand}
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	_, err := s.pass(ctx, "put", key, value+"\n", "insert", "-m", "-f")
	return err
}

// Get returns the first line of the entry; pass keeps metadata on the lines after it.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	stdout, err := s.pass(ctx, "get", key, "", "show")
	if err != nil {
		return "", err
	}

	token, _, _ := strings.Cut(stdout, "\n")
	return strings.TrimSuffix(token, "\r"), nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.pass(ctx, "delete", key, "", "rm", "-f")
	if errors.Is(err, domain.ErrSecretNotFound) {
		return nil
	}
	return err
}

// pass runs one subcommand against the entry for key, mapping missing entries to
// domain.ErrSecretNotFound.
func (s *Store) pass(ctx context.Context, op, key, input string, args ...string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	stdout, stderr, err := s.run(ctx, input, append(args, entryName(key))...)
	switch {
	case err == nil:
		return stdout, nil
	case strings.Contains(stderr, notInStoreMarker):
		return "", fmt.Errorf("pass %s %q: %w", op, key, domain.ErrSecretNotFound)
	default:
		return "", formatError(op, key, err, stderr)
	}
}

func entryName(key string) string {
	if scheme, rest, ok := strings.Cut(key, "://"); ok {
		return scheme + "/" + rest
	}
	return key
}

func runPassCommand(ctx context.Context, input string, args ...string) (string, string, error) {
	path, err := exec.LookPath("pass")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", ErrUnavailable
		}
		return "", "", fmt.Errorf("locate pass command: %w", err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func formatError(op string, key string, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("pass %s %q: %w", op, key, err)
	}

	return fmt.Errorf("pass %s %q: %w: %s", op, key, err, stderr)
}
