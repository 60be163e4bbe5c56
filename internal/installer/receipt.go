package installer

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/skillpack/skillpack/pkg/fileutil"
)

// ReceiptName is the install record kept at the destination root. It is
// advisory only: install and uninstall never consult it for decisions.
const ReceiptName = ".skillpack.toml"

// Receipt records which skills were installed into a destination root.
type Receipt struct {
	Skills map[string]ReceiptEntry `toml:"skills"`
}

// ReceiptEntry describes one installed skill.
type ReceiptEntry struct {
	Source      string    `toml:"source"`
	InstalledAt time.Time `toml:"installed_at"`
}

// ReadReceipt loads the receipt from a destination root.
// A missing receipt is not an error; an empty Receipt is returned.
func ReadReceipt(destRoot string) (*Receipt, error) {
	data, err := os.ReadFile(filepath.Join(destRoot, ReceiptName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Receipt{Skills: map[string]ReceiptEntry{}}, nil
		}
		return nil, errors.Wrap(err, "reading receipt")
	}

	var r Receipt
	if err := toml.Unmarshal(data, &r); err != nil {
		return nil, errors.Wrap(err, "unmarshaling receipt")
	}
	if r.Skills == nil {
		r.Skills = map[string]ReceiptEntry{}
	}
	return &r, nil
}

func (i *Installer) writeReceipt(r *Receipt) error {
	data, err := toml.Marshal(r)
	if err != nil {
		return errors.Wrap(err, "marshaling receipt")
	}
	return fileutil.AtomicWriteFile(filepath.Join(i.destRoot, ReceiptName), data, 0o644)
}

func (i *Installer) recordInstall(name, source string) error {
	r, err := ReadReceipt(i.destRoot)
	if err != nil {
		return err
	}

	abs, err := filepath.Abs(source)
	if err != nil {
		abs = source
	}
	r.Skills[name] = ReceiptEntry{Source: abs, InstalledAt: time.Now().UTC()}

	return i.writeReceipt(r)
}

func (i *Installer) recordUninstall(name string) error {
	r, err := ReadReceipt(i.destRoot)
	if err != nil {
		return err
	}
	if _, ok := r.Skills[name]; !ok {
		return nil
	}
	delete(r.Skills, name)

	// Last skill gone: remove the receipt too, leaving the root as found.
	if len(r.Skills) == 0 {
		err := os.Remove(filepath.Join(i.destRoot, ReceiptName))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.Wrap(err, "removing receipt")
		}
		return nil
	}

	return i.writeReceipt(r)
}
