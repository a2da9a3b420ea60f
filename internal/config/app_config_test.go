package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/temirov/aoc/internal/utils"
)

type configTestCase struct {
	name           string
	globalContent  string
	localContent   string
	explicitPath   string
	expectFormat   string
	expectVariant  string
	expectCopy     *bool
	expectCapacity *int64
	expectLimit    *int64
	expectLevel    string
}

func boolPointer(value bool) *bool {
	pointer := value
	return &pointer
}

func int64Pointer(value int64) *int64 {
	pointer := value
	return &pointer
}

func TestLoadApplicationConfigurationMergesSources(t *testing.T) {
	testCases := []configTestCase{
		{
			name:           "local_overrides_global",
			globalContent:  "output:\n  format: json\n  copy: true\ndirectories:\n  capacity: 1000\n  small_limit: 10\n",
			localContent:   "output:\n  format: xml\ndirectories:\n  capacity: 2000\nlogging:\n  level: debug\n",
			expectFormat:   "xml",
			expectCopy:     boolPointer(true),
			expectCapacity: int64Pointer(2000),
			expectLimit:    int64Pointer(10),
			expectLevel:    "debug",
		},
		{
			name:          "explicit_path_only",
			globalContent: "output:\n  format: json\n",
			explicitPath:  "custom.yaml",
			expectFormat:  "raw",
			expectVariant: "input",
		},
		{
			name:          "global_only",
			globalContent: "inputs:\n  variant: input\n",
			expectVariant: "input",
		},
		{
			name: "no_files",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			homeDir := t.TempDir()
			workingDir := t.TempDir()
			configDir := filepath.Join(homeDir, utils.GlobalConfigDirectoryName)
			if err := os.MkdirAll(configDir, 0o755); err != nil {
				t.Fatalf("create config dir: %v", err)
			}
			if testCase.globalContent != "" {
				globalPath := filepath.Join(configDir, utils.ConfigFileName)
				if err := os.WriteFile(globalPath, []byte(testCase.globalContent), 0o600); err != nil {
					t.Fatalf("write global config: %v", err)
				}
			}
			localPath := filepath.Join(workingDir, utils.ConfigFileName)
			if testCase.localContent != "" {
				if err := os.WriteFile(localPath, []byte(testCase.localContent), 0o600); err != nil {
					t.Fatalf("write local config: %v", err)
				}
			}
			if testCase.explicitPath != "" {
				target := filepath.Join(workingDir, testCase.explicitPath)
				if err := os.WriteFile(target, []byte("output:\n  format: raw\ninputs:\n  variant: input\n"), 0o600); err != nil {
					t.Fatalf("write explicit config: %v", err)
				}
			}

			t.Setenv("HOME", homeDir)
			t.Setenv("USERPROFILE", homeDir)

			loadedConfig, err := LoadApplicationConfiguration(LoadOptions{
				WorkingDirectory: workingDir,
				ExplicitFilePath: testCase.explicitPath,
			})
			if err != nil {
				t.Fatalf("LoadApplicationConfiguration error: %v", err)
			}

			if loadedConfig.Output.Format != testCase.expectFormat {
				t.Fatalf("expected format %q, got %q", testCase.expectFormat, loadedConfig.Output.Format)
			}
			if loadedConfig.Inputs.Variant != testCase.expectVariant {
				t.Fatalf("expected variant %q, got %q", testCase.expectVariant, loadedConfig.Inputs.Variant)
			}
			if loadedConfig.Logging.Level != testCase.expectLevel {
				t.Fatalf("expected level %q, got %q", testCase.expectLevel, loadedConfig.Logging.Level)
			}
			if testCase.expectCopy == nil {
				if loadedConfig.Output.Copy != nil {
					t.Fatalf("expected no copy override")
				}
			} else if loadedConfig.Output.Copy == nil || *loadedConfig.Output.Copy != *testCase.expectCopy {
				t.Fatalf("unexpected copy value")
			}
			if testCase.expectCapacity == nil {
				if loadedConfig.Directories.Capacity != nil {
					t.Fatalf("expected no capacity override")
				}
			} else if loadedConfig.Directories.Capacity == nil || *loadedConfig.Directories.Capacity != *testCase.expectCapacity {
				t.Fatalf("unexpected capacity value")
			}
			if testCase.expectLimit == nil {
				if loadedConfig.Directories.SmallLimit != nil {
					t.Fatalf("expected no small limit override")
				}
			} else if loadedConfig.Directories.SmallLimit == nil || *loadedConfig.Directories.SmallLimit != *testCase.expectLimit {
				t.Fatalf("unexpected small limit value")
			}
		})
	}
}

func TestLoadApplicationConfigurationRejectsDirectory(t *testing.T) {
	workingDir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("USERPROFILE", t.TempDir())
	if err := os.Mkdir(filepath.Join(workingDir, utils.ConfigFileName), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if _, err := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDir}); err == nil {
		t.Fatalf("expected error when configuration path is a directory")
	}
}

func TestMergeKeepsUnsetValues(t *testing.T) {
	base := ApplicationConfiguration{
		Inputs:      InputConfiguration{Directory: "puzzles", Variant: "input"},
		Directories: DirectoryConfiguration{RequiredFree: int64Pointer(5)},
	}
	merged := base.Merge(ApplicationConfiguration{Output: OutputConfiguration{Format: "json"}})
	if merged.Inputs.Directory != "puzzles" || merged.Inputs.Variant != "input" {
		t.Fatalf("inputs were overwritten: %+v", merged.Inputs)
	}
	if Int64Or(merged.Directories.RequiredFree, 0) != 5 {
		t.Fatalf("required free was overwritten")
	}
	if merged.Output.Format != "json" {
		t.Fatalf("format override was not applied")
	}
}

func TestRenderYAML(t *testing.T) {
	configuration := ApplicationConfiguration{
		Output:      OutputConfiguration{Format: "json", Copy: boolPointer(true)},
		Directories: DirectoryConfiguration{Capacity: int64Pointer(70000000)},
	}
	rendered, err := configuration.RenderYAML()
	if err != nil {
		t.Fatalf("RenderYAML error: %v", err)
	}
	for _, fragment := range []string{"format: json", "copy: true", "capacity: 70000000"} {
		if !strings.Contains(rendered, fragment) {
			t.Fatalf("expected %q in rendered configuration:\n%s", fragment, rendered)
		}
	}
}
