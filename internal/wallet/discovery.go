package wallet

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabapcia/walletsync/internal/pkg/logger"
)

const (
	// KeysFileExtension marks the credential file that identifies a wallet on disk.
	KeysFileExtension = ".keys"

	// addressFileSuffix is appended to the wallet name to find its address file.
	addressFileSuffix = ".address.txt"

	// UnknownAddress is reported when a wallet's address file cannot be read.
	UnknownAddress = "??????"
)

// Info describes a wallet discovered on disk.
type Info struct {
	Dir     string // directory the wallet was found in
	Name    string // wallet name (key file name without extension)
	Address string // first line of the address file, or UnknownAddress
}

// Path returns the wallet path used to open it.
func (i Info) Path() string {
	return filepath.Join(i.Dir, i.Name)
}

// readAddress returns the first line of the wallet's address file.
func readAddress(path string) (string, error) {
	// #nosec G304 -- path is built from a directory listing
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", nil
	}

	return strings.TrimSpace(scanner.Text()), nil
}

// FindWallets scans dir for wallet key files.
//
// An unreadable address file never aborts the scan: the failure is logged and
// the address is reported as UnknownAddress. Only a failure to list dir
// itself is returned.
func (s *service) FindWallets(ctx context.Context, dir string) ([]Info, error) {
	logger.Debug(ctx, "scanning for wallets", "wallet.dir", dir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	wallets := make([]Info, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), KeysFileExtension) {
			continue
		}

		info := Info{
			Dir:     dir,
			Name:    strings.TrimSuffix(entry.Name(), KeysFileExtension),
			Address: UnknownAddress,
		}

		address, err := readAddress(filepath.Join(dir, info.Name+addressFileSuffix))
		if err != nil {
			logger.Warn(ctx, "unable to read wallet address file",
				"wallet.name", info.Name,
				"error", err,
			)
		} else {
			info.Address = address
		}

		wallets = append(wallets, info)
	}

	return wallets, nil
}
