// Package cli provides the command-line interface for docket.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mrz1836/docket/internal/config"
	"github.com/mrz1836/docket/internal/flock"
	"github.com/mrz1836/docket/internal/task"
)

// checkResult is the outcome of one doctor check.
type checkResult struct {
	Name    string `json:"name"`
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// AddDoctorCommand adds the doctor command to the root command.
func AddDoctorCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the docket installation",
		Long: `Run health checks against the docket environment: the home directory,
the data file, the configuration, and the log directory.

Exit codes:
  0: All checks passed
  1: One or more checks failed`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd.Context(), flags, os.Stdout)
		},
	}
	root.AddCommand(cmd)
}

// runDoctor executes all health checks in parallel and reports the results.
func runDoctor(ctx context.Context, flags *GlobalFlags, w io.Writer) error {
	a, err := newApp(ctx, flags, w)
	if err != nil {
		return err
	}

	storePath := flags.File
	if storePath == "" {
		storePath, err = a.cfg.Store.ResolvePath()
		if err != nil {
			return err
		}
	}

	checks := []func(ctx context.Context) checkResult{
		checkHomeDir,
		checkConfig,
		func(ctx context.Context) checkResult { return checkDataFile(ctx, storePath) },
		func(_ context.Context) checkResult { return checkLockFile(storePath) },
		func(_ context.Context) checkResult { return checkLogDir() },
	}

	// Checks are independent; run them concurrently and collect by slot.
	results := make([]checkResult, len(checks))
	g, gctx := errgroup.WithContext(ctx)
	for i, check := range checks {
		g.Go(func() error {
			results[i] = check(gctx)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if !r.OK {
			failed++
		}
	}

	if flags.Output == OutputJSON {
		if err := a.out.JSON(map[string]any{
			"checks": results,
			"failed": failed,
		}); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.OK {
				a.out.Success(fmt.Sprintf("%s: %s", r.Name, r.Message))
			} else {
				a.out.Error(fmt.Errorf("%s: %s", r.Name, r.Message))
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(results))
	}
	return nil
}

// checkHomeDir verifies the docket home directory exists and is writable.
func checkHomeDir(_ context.Context) checkResult {
	result := checkResult{Name: "home directory"}

	home, err := config.DocketHome()
	if err != nil {
		result.Message = err.Error()
		return result
	}

	probe := filepath.Join(home, ".doctor-probe")
	if err := os.MkdirAll(home, 0o750); err != nil {
		result.Message = fmt.Sprintf("%s is not writable: %v", home, err)
		return result
	}
	f, err := os.Create(probe) //nolint:gosec // probe file inside docket home
	if err != nil {
		result.Message = fmt.Sprintf("%s is not writable: %v", home, err)
		return result
	}
	_ = f.Close()
	_ = os.Remove(probe)

	result.OK = true
	result.Message = home
	return result
}

// checkConfig verifies the layered configuration loads and validates.
func checkConfig(ctx context.Context) checkResult {
	result := checkResult{Name: "config"}

	cfg, err := config.Load(ctx)
	if err != nil {
		result.Message = err.Error()
		return result
	}

	result.OK = true
	result.Message = fmt.Sprintf("theme %s", cfg.UI.Theme)
	return result
}

// checkDataFile verifies the data file parses. A missing file is healthy.
func checkDataFile(ctx context.Context, path string) checkResult {
	result := checkResult{Name: "data file"}

	store := task.NewFileStore(path)
	groups, err := store.Load(ctx)
	if err != nil {
		result.Message = err.Error()
		return result
	}

	result.OK = true
	if len(groups) == 0 {
		result.Message = fmt.Sprintf("%s (empty)", path)
	} else {
		result.Message = fmt.Sprintf("%s (%d groups)", path, len(groups))
	}
	return result
}

// checkLockFile verifies the data file lock can be acquired. A held lock
// means another docket process is mid-write; a leftover file from a crash
// is harmless because flock state dies with the process.
func checkLockFile(path string) checkResult {
	result := checkResult{Name: "file lock"}

	lockPath := path + ".lock"
	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0o600) //#nosec G304 -- lock path derives from the configured data file
	if err != nil {
		result.Message = fmt.Sprintf("cannot open %s: %v", lockPath, err)
		return result
	}
	defer func() { _ = f.Close() }()

	if err := flock.Acquire(f); err != nil {
		result.Message = fmt.Sprintf("%s is held by another process", lockPath)
		return result
	}
	_ = flock.Release(f)

	result.OK = true
	result.Message = "acquirable"
	return result
}

// checkLogDir verifies the log directory can be created.
func checkLogDir() checkResult {
	result := checkResult{Name: "log directory"}

	dir, err := config.LogDir()
	if err != nil {
		result.Message = err.Error()
		return result
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		result.Message = err.Error()
		return result
	}

	result.OK = true
	result.Message = dir
	return result
}
