package sshutil

import (
	"bytes"
	"fmt"

	"github.com/rileyhilliard/nodewatch/internal/errors"
	"golang.org/x/crypto/ssh"
)

// Exec runs a command on the remote host. A non-zero exit status is
// returned as exitCode with a nil error; exitCode is -1 when the
// command never ran at all.
func (c *Client) Exec(cmd string) (stdout, stderr []byte, exitCode int, err error) {
	session, err := c.newSSHSession()
	if err != nil {
		return nil, nil, -1, errors.WrapWithCode(err, errors.ErrSSH,
			"Failed to create SSH session",
			"Connection may have been closed. Try reconnecting.")
	}
	defer session.Close()

	var stdoutBuf, stderrBuf bytes.Buffer
	session.Stdout = &stdoutBuf
	session.Stderr = &stderrBuf

	if err := session.Run(cmd); err != nil {
		exitErr, ok := err.(*ssh.ExitError)
		if !ok {
			return nil, nil, -1, errors.WrapWithCode(err, errors.ErrSSH,
				fmt.Sprintf("Failed to execute command: %s", cmd),
				"Check if the command exists on the remote host.")
		}
		return stdoutBuf.Bytes(), stderrBuf.Bytes(), exitErr.ExitStatus(), nil
	}

	return stdoutBuf.Bytes(), stderrBuf.Bytes(), 0, nil
}
