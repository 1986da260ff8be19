package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/alan/nu-tracker/cmd"
)

func TestLoadSettings(t *testing.T) {
	tests := []struct {
		name          string
		fileContent   string
		noFile        bool
		wantErr       bool
		wantErrMsg    string
		expectedGroup string
		expectedCols  []string
	}{
		{
			name: "valid settings",
			fileContent: `version: 1
group: ag
comment_columns:
  - id
  - title`,
			expectedGroup: "ag",
			expectedCols:  []string{"id", "title"},
		},
		{
			name:          "missing group uses default",
			fileContent:   `version: 1`,
			expectedGroup: cmd.DefaultGroup,
		},
		{
			name:          "file not found uses defaults",
			noFile:        true,
			expectedGroup: cmd.DefaultGroup,
		},
		{
			name:        "invalid yaml",
			fileContent: "invalid: yaml: content: [",
			wantErr:     true,
			wantErrMsg:  "failed to parse settings file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			settingsFile := filepath.Join(tempDir, SettingsFile)

			if !tt.noFile {
				if err := os.WriteFile(settingsFile, []byte(tt.fileContent), 0644); err != nil {
					t.Fatalf("failed to write test file: %v", err)
				}
			}

			settings, err := LoadSettings(settingsFile)

			if tt.wantErr {
				if err == nil {
					t.Errorf("LoadSettings() expected error, got nil")
					return
				}
				if tt.wantErrMsg != "" && !strings.Contains(err.Error(), tt.wantErrMsg) {
					t.Errorf("LoadSettings() error = %v, want error containing %v", err, tt.wantErrMsg)
				}
				return
			}

			if err != nil {
				t.Errorf("LoadSettings() unexpected error = %v", err)
				return
			}

			if settings.Group != tt.expectedGroup {
				t.Errorf("LoadSettings() group = %v, want %v", settings.Group, tt.expectedGroup)
			}

			if !reflect.DeepEqual(settings.CommentColumns, tt.expectedCols) {
				t.Errorf("LoadSettings() comment columns = %v, want %v", settings.CommentColumns, tt.expectedCols)
			}
		})
	}
}

func TestSaveSettings(t *testing.T) {
	tempDir := t.TempDir()
	settingsFile := filepath.Join(tempDir, "nested", SettingsFile)

	settings := &cmd.Settings{
		Version:       cmd.SettingsVersion,
		Group:         "i18n",
		DesignColumns: []string{"id", "spec"},
	}

	if err := SaveSettings(settingsFile, settings); err != nil {
		t.Fatalf("SaveSettings() unexpected error = %v", err)
	}

	info, err := os.Stat(settingsFile)
	if err != nil {
		t.Fatalf("SaveSettings() did not create file: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("SaveSettings() file mode = %v, want 0600", info.Mode().Perm())
	}

	loaded, err := LoadSettings(settingsFile)
	if err != nil {
		t.Fatalf("SaveSettings() created invalid file: %v", err)
	}

	if !reflect.DeepEqual(loaded, settings) {
		t.Errorf("SaveSettings() round trip = %+v, want %+v", loaded, settings)
	}
}

func TestDefaultRepos(t *testing.T) {
	repos, err := DefaultRepos()
	if err != nil {
		t.Fatalf("DefaultRepos() unexpected error = %v", err)
	}

	if repos.Version < 1 {
		t.Errorf("DefaultRepos() version = %d", repos.Version)
	}
	if repos.Charters == "" {
		t.Error("DefaultRepos() has no charters repo")
	}

	apa, ok := repos.Groups[cmd.DefaultGroup]
	if !ok {
		t.Fatalf("DefaultRepos() lacks the default group %q", cmd.DefaultGroup)
	}
	if apa.HorizontalReview == nil || apa.HorizontalReview.Specs == "" || apa.HorizontalReview.Comments == "" {
		t.Errorf("DefaultRepos() default group is not a horizontal review group: %+v", apa.HorizontalReview)
	}
	if apa.WorkingGroup.Main != "w3c/apa" {
		t.Errorf("DefaultRepos() apa main repo = %q", apa.WorkingGroup.Main)
	}
	if len(apa.TaskForces) == 0 {
		t.Error("DefaultRepos() apa has no task forces")
	}

	if !strings.Contains(DefaultReposTOML(), "[groups.apa.working_group]") {
		t.Error("DefaultReposTOML() does not contain the apa group")
	}
}

func TestLoadRepos(t *testing.T) {
	t.Run("built-in when no file given", func(t *testing.T) {
		repos, err := LoadRepos("")
		if err != nil {
			t.Fatalf("LoadRepos() unexpected error = %v", err)
		}
		if _, ok := repos.Groups["apa"]; !ok {
			t.Error("LoadRepos() built-in info lacks apa")
		}
	})

	t.Run("custom file", func(t *testing.T) {
		reposFile := filepath.Join(t.TempDir(), ReposFile)
		content := `version = 1
charters = "w3c/strategy"

[groups.test.working_group]
main = "example/test"
others = ["example/test-extra"]

[groups.test.task_forces.tf]
main = "example/tf"
`
		if err := os.WriteFile(reposFile, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}

		repos, err := LoadRepos(reposFile)
		if err != nil {
			t.Fatalf("LoadRepos() unexpected error = %v", err)
		}

		test := repos.Groups["test"]
		if !reflect.DeepEqual(test.WorkingGroup.All(), []string{"example/test", "example/test-extra"}) {
			t.Errorf("LoadRepos() working group repos = %v", test.WorkingGroup.All())
		}
		if test.HorizontalReview != nil {
			t.Errorf("LoadRepos() horizontal review = %+v, want nil", test.HorizontalReview)
		}
		if test.TaskForces["tf"].Main != "example/tf" {
			t.Errorf("LoadRepos() task force = %+v", test.TaskForces["tf"])
		}
	})

	t.Run("invalid file", func(t *testing.T) {
		reposFile := filepath.Join(t.TempDir(), ReposFile)
		if err := os.WriteFile(reposFile, []byte("version = ["), 0644); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}

		_, err := LoadRepos(reposFile)
		if err == nil || !strings.Contains(err.Error(), "failed to parse repos file") {
			t.Errorf("LoadRepos() error = %v, want parse error", err)
		}
	})

	t.Run("file without groups", func(t *testing.T) {
		reposFile := filepath.Join(t.TempDir(), ReposFile)
		if err := os.WriteFile(reposFile, []byte("version = 1\n"), 0644); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}

		if _, err := LoadRepos(reposFile); err == nil {
			t.Error("LoadRepos() expected error for file without groups")
		}
	})
}

func TestDir(t *testing.T) {
	dir, err := Dir("/tmp/custom")
	if err != nil || dir != "/tmp/custom" {
		t.Errorf("Dir() with override = %q, %v", dir, err)
	}

	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")
	t.Setenv("AppData", "/tmp/appdata")
	dir, err = Dir("")
	if err != nil {
		t.Fatalf("Dir() unexpected error = %v", err)
	}
	if filepath.Base(dir) != DirName {
		t.Errorf("Dir() = %q, want a %q directory", dir, DirName)
	}
}
