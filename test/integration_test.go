//go:build integration
// +build integration

package test

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

const installerFile = `# UNCONFIGURED INTERFACES
# remove the above line if you edit this file

auto lo
iface lo inet loopback

auto eth0
iface eth0 inet dhcp
    post-up /usr/local/bin/notify eth0

auto eth1
iface eth1 inet manual
`

// TestProvisioningWorkflow builds the binary and drives it the way a provisioning
// console would: configure, inspect, pick a default interface, then stop once a
// human has taken over the file.
func TestProvisioningWorkflow(t *testing.T) {
	binary := buildBinary(t)

	dir := t.TempDir()
	interfacesPath := filepath.Join(dir, "interfaces")
	preferencesPath := filepath.Join(dir, "confconsole.conf")
	if err := os.WriteFile(interfacesPath, []byte(installerFile), 0640); err != nil {
		t.Fatalf("Failed to seed interfaces file: %v", err)
	}

	run := func(args ...string) (string, error) {
		return runBinary(binary, append([]string{
			"--interfaces-file", interfacesPath,
			"--preferences-file", preferencesPath,
		}, args...)...)
	}

	t.Run("Dry_Run_Leaves_File_Untouched", func(t *testing.T) {
		output, err := run("set", "manual", "eth0", "--dry-run")
		if err != nil {
			t.Fatalf("dry run failed: %v\n%s", err, output)
		}
		if !strings.Contains(output, "+iface eth0 inet manual") {
			t.Errorf("expected diff in output, got:\n%s", output)
		}
		if got := readFile(t, interfacesPath); got != installerFile {
			t.Errorf("dry run modified the file:\n%s", got)
		}
	})

	t.Run("Static_Keeps_Hooks_And_Other_Blocks", func(t *testing.T) {
		output, err := run("set", "static", "eth0",
			"--address", "192.168.101.10",
			"--netmask", "255.255.255.0",
			"--gateway", "192.168.101.1",
			"--default")
		if err != nil {
			t.Fatalf("set static failed: %v\n%s", err, output)
		}

		content := readFile(t, interfacesPath)
		expected := []string{
			"# UNCONFIGURED INTERFACES\n",
			"auto lo\niface lo inet loopback\n",
			"auto eth0\niface eth0 inet static\n    address 192.168.101.10\n    netmask 255.255.255.0\n    gateway 192.168.101.1\n    post-up /usr/local/bin/notify eth0\n",
			"auto eth1\niface eth1 inet manual\n",
		}
		for _, want := range expected {
			if !strings.Contains(content, want) {
				t.Errorf("missing %q in:\n%s", want, content)
			}
		}

		info, err := os.Stat(interfacesPath)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if info.Mode().Perm() != 0640 {
			t.Errorf("file mode changed to %v", info.Mode().Perm())
		}
		if got := readFile(t, preferencesPath); got != "default_nic eth0\n" {
			t.Errorf("unexpected preferences file: %q", got)
		}
	})

	t.Run("Concurrent_Writers_Do_Not_Interleave", func(t *testing.T) {
		var wg sync.WaitGroup
		errs := make([]error, 4)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				output, err := run("set", "manual", fmt.Sprintf("eth%d", i+2))
				if err != nil {
					errs[i] = fmt.Errorf("%w: %s", err, output)
				}
			}(i)
		}
		wg.Wait()

		for _, err := range errs {
			if err != nil {
				t.Errorf("concurrent set failed: %v", err)
			}
		}

		content := readFile(t, interfacesPath)
		if !strings.HasPrefix(content, "# UNCONFIGURED INTERFACES\n") {
			t.Errorf("header lost after concurrent writes:\n%s", content)
		}
		if strings.Count(content, "auto eth0\n") != 1 {
			t.Errorf("eth0 block duplicated:\n%s", content)
		}
	})

	t.Run("Show_Reports_Default", func(t *testing.T) {
		output, err := run("show")
		if err != nil {
			t.Fatalf("show failed: %v\n%s", err, output)
		}
		if !strings.Contains(output, "State: unconfigured") || !strings.Contains(output, "Default NIC: eth0") {
			t.Errorf("unexpected show output:\n%s", output)
		}
	})

	t.Run("Hand_Edited_File_Is_Refused", func(t *testing.T) {
		handEdited := "auto lo\niface lo inet loopback\n\nauto eth0\niface eth0 inet dhcp\n"
		if err := os.WriteFile(interfacesPath, []byte(handEdited), 0640); err != nil {
			t.Fatalf("Failed to rewrite interfaces file: %v", err)
		}

		output, err := run("set", "dhcp", "eth0")
		if err == nil {
			t.Fatalf("expected refusal, got success:\n%s", output)
		}
		if !strings.Contains(output, "header not found") {
			t.Errorf("expected guard message, got:\n%s", output)
		}
		if got := readFile(t, interfacesPath); got != handEdited {
			t.Errorf("hand-edited file was modified:\n%s", got)
		}
	})
}

// buildBinary compiles the command from the project root into a temp dir
func buildBinary(t *testing.T) string {
	t.Helper()

	binary := filepath.Join(t.TempDir(), "golang-ifconf")
	cmd := exec.Command("go", "build", "-o", binary, ".")
	cmd.Dir = filepath.Join("..") // Go up one directory to project root
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build binary: %v\n%s", err, output)
	}
	return binary
}

// runBinary runs the binary and returns combined stdout and stderr
func runBinary(binary string, args ...string) (string, error) {
	var output bytes.Buffer
	cmd := exec.Command(binary, args...)
	cmd.Stdout = &output
	cmd.Stderr = &output
	err := cmd.Run()
	return output.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}
