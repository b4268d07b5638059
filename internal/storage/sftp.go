package storage

import (
	"context"
	"fmt"
	"net"
	"os"
	"path"
	"path/filepath"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"

	"github.com/lite-lake/zonevault/internal/config"
	"github.com/lite-lake/zonevault/internal/domain/retry"
)

// SFTPStore keeps one SSH session for the whole run and writes each
// artifact as a file under BaseDir, creating key prefixes as directories.
type SFTPStore struct {
	sshClient  *ssh.Client
	sftpClient *sftp.Client
	baseDir    string
}

func NewSFTPStore(cfg *config.SFTPConfig) (*SFTPStore, error) {
	hostKeyCallback, err := createHostKeyCallback()
	if err != nil {
		return nil, fmt.Errorf("create host key callback: %w", err)
	}

	sshConfig := &ssh.ClientConfig{
		User: cfg.User,
		Auth: []ssh.AuthMethod{
			ssh.Password(cfg.Password),
		},
		HostKeyCallback: hostKeyCallback,
	}

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	sshClient, err := ssh.Dial("tcp", addr, sshConfig)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}

	sftpClient, err := sftp.NewClient(sshClient)
	if err != nil {
		sshClient.Close()
		return nil, fmt.Errorf("open sftp session: %w", err)
	}

	return &SFTPStore{
		sshClient:  sshClient,
		sftpClient: sftpClient,
		baseDir:    cfg.BaseDir,
	}, nil
}

func (s *SFTPStore) Name() string {
	return "sftp"
}

func (s *SFTPStore) Put(ctx context.Context, key string, data []byte) error {
	target := path.Join(s.baseDir, key)

	err := retry.Do(ctx, func() error {
		if err := s.sftpClient.MkdirAll(path.Dir(target)); err != nil {
			return err
		}
		f, err := s.sftpClient.Create(target)
		if err != nil {
			return err
		}
		if _, err := f.Write(data); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, retry.WithIsRetryable(isTransient))
	if err != nil {
		return fmt.Errorf("put %s: %w", target, err)
	}
	return nil
}

func (s *SFTPStore) Close() error {
	if s.sftpClient != nil {
		s.sftpClient.Close()
	}
	if s.sshClient != nil {
		return s.sshClient.Close()
	}
	return nil
}

// createHostKeyCallback verifies against ~/.ssh/known_hosts and records
// first-seen host keys; a changed key is rejected.
func createHostKeyCallback() (ssh.HostKeyCallback, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv("HOME")
	}
	knownHostsPath := filepath.Join(homeDir, ".ssh", "known_hosts")

	if _, err := os.Stat(knownHostsPath); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(knownHostsPath), 0o700); err != nil {
			return nil, err
		}
		if err := os.WriteFile(knownHostsPath, []byte{}, 0o600); err != nil {
			return nil, err
		}
	}

	callback, err := knownhosts.New(knownHostsPath)
	if err != nil {
		return nil, err
	}

	return func(hostname string, remote net.Addr, key ssh.PublicKey) error {
		err := callback(hostname, remote, key)
		if err == nil {
			return nil
		}

		keyErr, ok := err.(*knownhosts.KeyError)
		if !ok {
			return err
		}
		if len(keyErr.Want) > 0 {
			return fmt.Errorf("host key mismatch for %s: possible MITM attack", hostname)
		}

		line := knownhosts.Line([]string{hostname}, key)
		f, err := os.OpenFile(knownHostsPath, os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("open known_hosts: %w", err)
		}
		defer f.Close()
		if _, err := fmt.Fprintln(f, line); err != nil {
			return fmt.Errorf("write known_hosts: %w", err)
		}
		return nil
	}, nil
}
