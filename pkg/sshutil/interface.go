package sshutil

import "io"

// SSHClient is what metrics collection needs from an SSH connection.
// Satisfied by Client and by the mock in the testing subpackage.
type SSHClient interface {
	// Exec runs a command. Exit code -1 means the command never ran;
	// a non-zero code with nil error means it ran and failed.
	Exec(cmd string) (stdout, stderr []byte, exitCode int, err error)

	Close() error

	// GetHost returns the dial string the client was created with.
	GetHost() string

	// GetAddress returns the resolved host:port address.
	GetAddress() string

	// NewSession opens a throwaway session, used as a liveness check
	// for pooled connections. Callers must close it.
	NewSession() (Session, error)
}

// Session is the closable slice of ssh.Session the pool needs.
type Session interface {
	io.Closer
}
