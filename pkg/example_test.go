package bumpversion

import (
	"fmt"
	"os"
	"path/filepath"
)

func ExampleParseVersion() {
	v, err := ParseVersion("1.5.3-rc1+modified")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	next, _ := v.Bump(Minor)
	fmt.Println("parsed:", v)
	fmt.Println("minor:", next)

	// Output:
	// parsed: 1.5.3
	// minor: 1.6.0
}

// ExampleBumper_Run demonstrates a patch bump in a temporary project. It
// writes a pyproject.toml and an addon.json one directory below the root,
// bumps 1.2.3 to 1.2.4, and prints the rewritten files.
func ExampleBumper_Run() {
	// Create a temporary project directory.
	tmpDir, err := os.MkdirTemp("", "bumpversion_example")
	if err != nil {
		fmt.Println("failed to create temporary directory:", err)
		return
	}
	defer os.RemoveAll(tmpDir)

	manifest := filepath.Join(tmpDir, "pyproject.toml")
	initialContent := "[project]\nname = \"demo\"\nversion = \"1.2.3\"  # release\n"
	if err := os.WriteFile(manifest, []byte(initialContent), 0644); err != nil {
		fmt.Println("failed to write manifest:", err)
		return
	}

	addonDir := filepath.Join(tmpDir, "addon")
	if err := os.MkdirAll(addonDir, 0755); err != nil {
		fmt.Println("failed to create addon directory:", err)
		return
	}
	addon := filepath.Join(addonDir, "addon.json")
	if err := os.WriteFile(addon, []byte(`{"id":"demo","version":"1.2.3"}`), 0644); err != nil {
		fmt.Println("failed to write addon.json:", err)
		return
	}

	b, err := New(Config{Root: tmpDir})
	if err != nil {
		fmt.Println("invalid config:", err)
		return
	}
	res, err := b.Run(Patch)
	if err != nil {
		fmt.Println("error bumping version:", err)
		return
	}
	fmt.Println(res.OldVersion, "->", res.NewVersion)

	newManifest, _ := os.ReadFile(manifest)
	newAddon, _ := os.ReadFile(addon)
	fmt.Printf("%s%s", newManifest, newAddon)

	// Output:
	// 1.2.3 -> 1.2.4
	// [project]
	// name = "demo"
	// version = "1.2.4"  # release
	// {
	//   "id": "demo",
	//   "version": "1.2.4"
	// }
}
