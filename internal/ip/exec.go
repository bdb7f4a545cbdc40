package ip

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/qdm12/dynners/internal/ipversion"
)

type execSource struct {
	version   ipversion.IPVersion
	shell     string
	command   string
	commander Commander
}

func (s *execSource) Version() ipversion.IPVersion { return s.version }

func (s *execSource) String() string {
	return fmt.Sprintf("%s from command %q", s.version, s.command)
}

func (s *execSource) Resolve(ctx context.Context) (address netip.Addr, err error) {
	stdout, err := s.commander.Run(ctx, s.shell, s.command)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %w", ErrExecution, err)
	}

	if !utf8.Valid(stdout) {
		return netip.Addr{}, fmt.Errorf("%w: output is not valid UTF-8", ErrExecution)
	}

	address, err = parseAddress(strings.TrimSpace(string(stdout)), s.version)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %w", ErrExecution, err)
	}
	return address, nil
}

// ShellCommander runs commands as `<shell> -c <command>`.
type ShellCommander struct{}

func NewShellCommander() *ShellCommander {
	return &ShellCommander{}
}

// Run only fails if the command cannot be started or waited on.
// A non zero exit code is ignored and the standard output is returned.
func (c *ShellCommander) Run(ctx context.Context, shell, command string) (
	stdout []byte, err error) {
	cmd := exec.CommandContext(ctx, shell, "-c", command)
	stdout, err = cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return stdout, nil
	}
	return stdout, err
}
