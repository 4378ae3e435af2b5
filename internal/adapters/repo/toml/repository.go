package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/avenk/nixdev-cli/internal/domain"
	"github.com/avenk/nixdev-cli/internal/ports"
)

const (
	configName      = "config"
	configType      = "toml"
	shellsPathKey   = "shells.path"
	shellsFileMode  = 0o600
	shellsDirMode   = 0o700
	configDirName   = ".nixdev"
	shellsFileName  = "shells.toml"
	tempFilePattern = ".shells-*.toml.tmp"
)

type Repository struct {
	shellsPath string
	mu         *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ShellRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, configDirName, shellsFileName)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDirName))
	cfg.SetDefault(shellsPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	shellsPath := cfg.GetString(shellsPathKey)
	if shellsPath == "" {
		return nil, errors.New("shells path is empty")
	}
	shellsPath, err = normalizeShellsPath(shellsPath)
	if err != nil {
		return nil, err
	}

	return &Repository{shellsPath: shellsPath, mu: lockForPath(shellsPath)}, nil
}

func (r *Repository) GetByName(ctx context.Context, name domain.ShellName) (domain.Shell, error) {
	if err := ctx.Err(); err != nil {
		return domain.Shell{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Shell{}, err
	}

	if target, ok := file.Aliases[string(name)]; ok {
		name = domain.ShellName(target)
	}

	for _, entry := range file.Shells {
		if entry.Name == string(name) {
			return fromSchema(entry), nil
		}
	}

	return domain.Shell{}, domain.ErrShellNotFound
}

func (r *Repository) List(ctx context.Context) ([]domain.Shell, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	shells := make([]domain.Shell, 0, len(file.Shells))
	for _, entry := range file.Shells {
		shells = append(shells, fromSchema(entry))
	}

	return shells, nil
}

func (r *Repository) Aliases(ctx context.Context) (map[domain.ShellName]domain.ShellName, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	aliases := make(map[domain.ShellName]domain.ShellName, len(file.Aliases))
	for alias, target := range file.Aliases {
		aliases[domain.ShellName(alias)] = domain.ShellName(target)
	}

	return aliases, nil
}

func (r *Repository) Save(ctx context.Context, shell domain.Shell) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(shell)
	updated := false
	for i := range file.Shells {
		if file.Shells[i].Name == encoded.Name {
			file.Shells[i] = encoded
			updated = true
			break
		}
	}

	if !updated {
		file.Shells = append(file.Shells, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) Pins(ctx context.Context) (domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.Snapshot{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Snapshot{}, err
	}

	return domain.Snapshot{
		Nixpkgs:    domain.FlakeRef(file.Inputs.Nixpkgs),
		FlakeUtils: domain.FlakeRef(file.Inputs.FlakeUtils),
	}, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.shellsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := fileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return fileSchema{}, fmt.Errorf("read shells file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode shells file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeShellsPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve shells path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.shellsPath), shellsDirMode); err != nil {
		return fmt.Errorf("create shells directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode shells file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.shellsPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp shells file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp shells file: %w", err)
	}

	if err := tempFile.Chmod(shellsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp shells file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp shells file: %w", err)
	}

	if err := os.Rename(tempName, r.shellsPath); err != nil {
		return fmt.Errorf("replace shells file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(r.shellsPath, shellsFileMode); err != nil {
		return fmt.Errorf("chmod shells file: %w", err)
	}

	return nil
}

func toSchema(shell domain.Shell) shellSchema {
	return shellSchema{
		Name:        string(shell.Name),
		DriverDir:   shell.DriverDir,
		DevTools:    refsToStrings(shell.DevTools),
		BaseInputs:  refsToStrings(shell.BaseInputs),
		RuntimeDeps: refsToStrings(shell.RuntimeDeps),
		HookUnset:   append([]string(nil), shell.HookUnset...),
	}
}

func fromSchema(entry shellSchema) domain.Shell {
	return domain.Shell{
		Name:        domain.ShellName(entry.Name),
		DriverDir:   entry.DriverDir,
		DevTools:    stringsToRefs(entry.DevTools),
		BaseInputs:  stringsToRefs(entry.BaseInputs),
		RuntimeDeps: stringsToRefs(entry.RuntimeDeps),
		HookUnset:   append([]string(nil), entry.HookUnset...),
	}
}

func refsToStrings(refs []domain.PackageRef) []string {
	if refs == nil {
		return nil
	}
	out := make([]string, len(refs))
	for i, ref := range refs {
		out[i] = string(ref)
	}
	return out
}

func stringsToRefs(raw []string) []domain.PackageRef {
	if raw == nil {
		return nil
	}
	out := make([]domain.PackageRef, len(raw))
	for i, s := range raw {
		out[i] = domain.PackageRef(s)
	}
	return out
}
