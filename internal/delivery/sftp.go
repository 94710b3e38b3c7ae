// Package delivery ships merged letter batches to the BCMail print vendor
// over SFTP. One best-effort upload per run; retry is a scheduling concern,
// not ours.
package delivery

import (
	"context"
	"fmt"
	"net"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

const dialTimeout = 30 * time.Second

// Uploader submits a merged letter artifact to the outbound channel and
// returns the remote file name it was stored under.
type Uploader interface {
	Upload(ctx context.Context, data []byte, remoteDir string, fileName string) (string, error)
}

type Config struct {
	Host       string
	Port       int
	Username   string
	Password   string
	PrivateKey string // PEM; takes precedence over Password when set
}

// SFTPUploader dials a fresh SSH session per upload. The job runs a handful
// of uploads per invocation, so connection reuse buys nothing.
type SFTPUploader struct {
	cfg Config
}

func NewSFTPUploader(cfg Config) (*SFTPUploader, error) {
	if strings.TrimSpace(cfg.Host) == "" {
		return nil, fmt.Errorf("sftp host is required")
	}
	if strings.TrimSpace(cfg.Username) == "" {
		return nil, fmt.Errorf("sftp username is required")
	}
	if strings.TrimSpace(cfg.Password) == "" && strings.TrimSpace(cfg.PrivateKey) == "" {
		return nil, fmt.Errorf("sftp password or private key is required")
	}
	if cfg.Port <= 0 {
		cfg.Port = 22
	}

	return &SFTPUploader{cfg: cfg}, nil
}

func (u *SFTPUploader) Upload(ctx context.Context, data []byte, remoteDir string, fileName string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("upload data is empty")
	}
	if strings.TrimSpace(fileName) == "" {
		return "", fmt.Errorf("file name is required")
	}

	auth, err := u.authMethods()
	if err != nil {
		return "", err
	}

	sshConfig := &ssh.ClientConfig{
		User:            u.cfg.Username,
		Auth:            auth,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(), //nolint:gosec // vendor endpoint is pinned by network policy
		Timeout:         dialTimeout,
	}

	addr := net.JoinHostPort(u.cfg.Host, strconv.Itoa(u.cfg.Port))
	conn, err := ssh.Dial("tcp", addr, sshConfig)
	if err != nil {
		return "", fmt.Errorf("failed to dial sftp host %s: %w", addr, err)
	}
	defer conn.Close()

	client, err := sftp.NewClient(conn)
	if err != nil {
		return "", fmt.Errorf("failed to open sftp session: %w", err)
	}
	defer client.Close()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	remotePath := path.Join(remoteDir, fileName)
	file, err := client.Create(remotePath)
	if err != nil {
		return "", fmt.Errorf("failed to create remote file %s: %w", remotePath, err)
	}

	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return "", fmt.Errorf("failed to write remote file %s: %w", remotePath, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close remote file %s: %w", remotePath, err)
	}

	return remotePath, nil
}

func (u *SFTPUploader) authMethods() ([]ssh.AuthMethod, error) {
	if key := strings.TrimSpace(u.cfg.PrivateKey); key != "" {
		signer, err := ssh.ParsePrivateKey([]byte(key))
		if err != nil {
			return nil, fmt.Errorf("failed to parse sftp private key: %w", err)
		}
		return []ssh.AuthMethod{ssh.PublicKeys(signer)}, nil
	}

	return []ssh.AuthMethod{ssh.Password(u.cfg.Password)}, nil
}

// LetterFileName builds the timestamped artifact name for a category batch,
// e.g. letters-bc-20240603153000.pdf.
func LetterFileName(category string, at time.Time) string {
	return fmt.Sprintf("letters-%s-%s.pdf", strings.ToLower(category), at.UTC().Format("20060102150405"))
}
