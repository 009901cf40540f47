package functional

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// aCleanSuivmEnvironment is a no-op because the Before hook already sets up
// the environment. This step exists so feature files read naturally.
func aCleanSuivmEnvironment(ctx context.Context) (context.Context, error) {
	return ctx, nil
}

// versionIsInstalled fakes a completed install: versions/<v> with a stub
// sui binary inside.
func versionIsInstalled(ctx context.Context, version string) (context.Context, error) {
	return fakeInstall(ctx, version, true)
}

// versionIsInstalledWithoutBinary creates the version directory but no
// binary, simulating a broken installation.
func versionIsInstalledWithoutBinary(ctx context.Context, version string) (context.Context, error) {
	return fakeInstall(ctx, version, false)
}

func fakeInstall(ctx context.Context, version string, withBinary bool) (context.Context, error) {
	state := getState(ctx)
	if state == nil {
		return ctx, fmt.Errorf("no test state; is the Before hook running?")
	}

	versionDir := filepath.Join(state.homeDir, ".suivm", "versions", version)
	if err := os.MkdirAll(versionDir, 0o755); err != nil {
		return ctx, err
	}
	if withBinary {
		bin := filepath.Join(versionDir, "sui")
		if err := os.WriteFile(bin, []byte("#!/bin/sh\necho sui\n"), 0o755); err != nil {
			return ctx, err
		}
	}
	return ctx, nil
}

// iRun executes a command string, replacing "suivm" with the test binary path.
func iRun(ctx context.Context, command string) (context.Context, error) {
	state := getState(ctx)
	if state == nil {
		return ctx, fmt.Errorf("no test state; is the Before hook running?")
	}

	args := strings.Fields(command)
	if len(args) > 0 && args[0] == "suivm" {
		args[0] = state.binPath
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = state.homeDir
	cmd.Env = append(os.Environ(), "HOME="+state.homeDir)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	state.stdout = stdout.String()
	state.stderr = stderr.String()

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			state.exitCode = exitErr.ExitCode()
		} else {
			return ctx, fmt.Errorf("command execution failed: %w", err)
		}
	} else {
		state.exitCode = 0
	}

	return ctx, nil
}

func theExitCodeIs(ctx context.Context, expected int) error {
	state := getState(ctx)
	if state.exitCode != expected {
		return fmt.Errorf("expected exit code %d, got %d\nstdout: %s\nstderr: %s",
			expected, state.exitCode, state.stdout, state.stderr)
	}
	return nil
}

func theExitCodeIsNot(ctx context.Context, notExpected int) error {
	state := getState(ctx)
	if state.exitCode == notExpected {
		return fmt.Errorf("expected exit code to not be %d\nstdout: %s\nstderr: %s",
			notExpected, state.stdout, state.stderr)
	}
	return nil
}

func theOutputContains(ctx context.Context, text string) error {
	state := getState(ctx)
	if !strings.Contains(state.stdout, text) {
		return fmt.Errorf("expected stdout to contain %q, got:\n%s", text, state.stdout)
	}
	return nil
}

func theOutputDoesNotContain(ctx context.Context, text string) error {
	state := getState(ctx)
	if strings.Contains(state.stdout, text) {
		return fmt.Errorf("expected stdout not to contain %q, got:\n%s", text, state.stdout)
	}
	return nil
}

func theErrorOutputContains(ctx context.Context, text string) error {
	state := getState(ctx)
	if !strings.Contains(state.stderr, text) {
		return fmt.Errorf("expected stderr to contain %q, got:\n%s", text, state.stderr)
	}
	return nil
}

// theHomeFileExists checks a path relative to the scenario's home directory.
func theHomeFileExists(ctx context.Context, rel string) error {
	state := getState(ctx)
	path := filepath.Join(state.homeDir, rel)
	if _, err := os.Lstat(path); err != nil {
		return fmt.Errorf("expected %s to exist: %v", path, err)
	}
	return nil
}

func theHomeFileDoesNotExist(ctx context.Context, rel string) error {
	state := getState(ctx)
	path := filepath.Join(state.homeDir, rel)
	if _, err := os.Lstat(path); err == nil {
		return fmt.Errorf("expected %s to not exist", path)
	}
	return nil
}

// theCurrentLinkPointsAt reads ~/.suivm/current and compares the final path
// component of its target with the expected version.
func theCurrentLinkPointsAt(ctx context.Context, version string) error {
	state := getState(ctx)
	link := filepath.Join(state.homeDir, ".suivm", "current")
	target, err := os.Readlink(link)
	if err != nil {
		return fmt.Errorf("reading current link: %w", err)
	}
	if got := filepath.Base(target); got != version {
		return fmt.Errorf("current link points at %q, want %q (target %s)", got, version, target)
	}
	return nil
}
