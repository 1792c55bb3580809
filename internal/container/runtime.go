// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package container detects a container runtime and runs one-shot tool
// images with stdin and stdout piped. It also exposes the command executor
// that other packages use to run local tools.
package container

import (
	"context"
	"fmt"
	"io"
	"os/exec"
)

const (
	binDocker = "docker"
	binPodman = "podman"
)

// Runtime runs container images.
type Runtime interface {
	// Name returns the runtime binary ("docker" or "podman").
	Name() string

	// Available reports whether the binary is on PATH and answers "info".
	Available(ctx context.Context) bool

	// ImageExists returns nil when image is present locally.
	ImageExists(ctx context.Context, image string) error

	// Run starts image with --rm -i, feeding stdin and collecting stdout.
	Run(ctx context.Context, image string, stdin io.Reader, stdout io.Writer) error
}

// Executor runs external commands. Tests substitute a fake.
type Executor interface {
	LookPath(file string) (string, error)
	RunSilent(ctx context.Context, name string, args ...string) error
	RunPiped(ctx context.Context, name string, args []string, stdin io.Reader, stdout io.Writer) error
}

// OSExecutor is the Executor backed by os/exec.
type OSExecutor struct{}

func (OSExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (OSExecutor) RunSilent(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

func (OSExecutor) RunPiped(ctx context.Context, name string, args []string, stdin io.Reader, stdout io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	return cmd.Run()
}

// runtime is shared by docker and podman, which differ only in the binary
// and the image-check subcommand.
type runtime struct {
	bin        string
	imageCheck []string
	exec       Executor
}

func (r *runtime) Name() string { return r.bin }

func (r *runtime) Available(ctx context.Context) bool {
	if _, err := r.exec.LookPath(r.bin); err != nil {
		return false
	}
	return r.exec.RunSilent(ctx, r.bin, "info") == nil
}

func (r *runtime) ImageExists(ctx context.Context, image string) error {
	args := append(append([]string{}, r.imageCheck...), image)
	if err := r.exec.RunSilent(ctx, r.bin, args...); err != nil {
		return fmt.Errorf("image %s not found in %s: %w", image, r.bin, err)
	}
	return nil
}

func (r *runtime) Run(ctx context.Context, image string, stdin io.Reader, stdout io.Writer) error {
	args := []string{"run", "--rm", "-i", image}
	if err := r.exec.RunPiped(ctx, r.bin, args, stdin, stdout); err != nil {
		return fmt.Errorf("running %s container %s: %w", r.bin, image, err)
	}
	return nil
}

func newDockerRuntime(e Executor) *runtime {
	return &runtime{bin: binDocker, imageCheck: []string{"image", "inspect"}, exec: e}
}

func newPodmanRuntime(e Executor) *runtime {
	return &runtime{bin: binPodman, imageCheck: []string{"image", "exists"}, exec: e}
}

// DetectRuntime prefers docker and falls back to podman.
func DetectRuntime(ctx context.Context) (Runtime, error) {
	return DetectRuntimeWith(ctx, OSExecutor{})
}

// DetectRuntimeWith is DetectRuntime with a caller-supplied executor.
func DetectRuntimeWith(ctx context.Context, e Executor) (Runtime, error) {
	for _, rt := range []*runtime{newDockerRuntime(e), newPodmanRuntime(e)} {
		if rt.Available(ctx) {
			return rt, nil
		}
	}
	return nil, fmt.Errorf("no container runtime available: neither %s nor %s found or operational",
		binDocker, binPodman)
}
