package domain

// DefaultEntryEnv is the environment variable naming the entry script.
// The wrapping launcher sets it so that relative paths resolve next to the script.
const DefaultEntryEnv = "TASKER_ENTRY_SCRIPT"

// HelpTaskName is the builtin run when no task and no default are given.
const HelpTaskName = "_help"

// ClearCacheTaskName is the builtin that removes the cache directory.
const ClearCacheTaskName = "_clear_cache"

// BuiltinPrefix is the canonical prefix under which builtins may also be registered.
const BuiltinPrefix = "task_"

const (
	// ShellSystem runs commands through the host shell.
	ShellSystem = "system"
	// ShellVirtual runs commands through the embedded POSIX interpreter.
	ShellVirtual = "virtual"
)

// RunOptions configures a run. It is passed by value and never modified after Run starts.
type RunOptions struct {
	// Dir is the base directory relative to the entry script's directory. Empty means ".".
	Dir string `yaml:"dir"`
	// Default is the task run when no task names are given. Empty means the help task.
	Default string `yaml:"default"`
	// LogLevel overrides the --log flag when set.
	LogLevel string `yaml:"logLevel"`
	// CacheDir is the directory removed by _clear_cache. Empty means <user cache dir>/tasker.
	CacheDir string `yaml:"cacheDir"`
	// Shell selects the runner for shell commands: "system" (default) or "virtual".
	Shell string `yaml:"shell"`
	// EntryEnv overrides the name of the entry script environment variable.
	EntryEnv string `yaml:"entryEnv"`
}

// RunDir returns the configured base directory, defaulting to ".".
func (o RunOptions) RunDir() string {
	if o.Dir == "" {
		return "."
	}
	return o.Dir
}

// DefaultTask returns the configured default task, falling back to the help task.
func (o RunOptions) DefaultTask() string {
	if o.Default == "" {
		return HelpTaskName
	}
	return o.Default
}

// EntryVariable returns the name of the entry script environment variable.
func (o RunOptions) EntryVariable() string {
	if o.EntryEnv == "" {
		return DefaultEntryEnv
	}
	return o.EntryEnv
}

// ShellKind returns the configured shell runner kind, defaulting to ShellSystem.
func (o RunOptions) ShellKind() string {
	if o.Shell == "" {
		return ShellSystem
	}
	return o.Shell
}

// Merge returns o with every non-empty field of override applied on top.
func (o RunOptions) Merge(override RunOptions) RunOptions {
	pick := func(base, over string) string {
		if over != "" {
			return over
		}
		return base
	}
	return RunOptions{
		Dir:      pick(o.Dir, override.Dir),
		Default:  pick(o.Default, override.Default),
		LogLevel: pick(o.LogLevel, override.LogLevel),
		CacheDir: pick(o.CacheDir, override.CacheDir),
		Shell:    pick(o.Shell, override.Shell),
		EntryEnv: pick(o.EntryEnv, override.EntryEnv),
	}
}
