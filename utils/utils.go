package utils

import (
	"log"
	"os"
	"path/filepath"
	"strings"
)

func CapSafeName(name string) string {
	return CapName(SafeName(name))
}

func CapName(name string) string {
	var c uint8
	for {
		c = name[0]
		if c != '_' {
			break
		}
		name = name[1:] + "_"
	}
	if c >= 'a' && c <= 'z' {
		name = string(c-32) + name[1:]
	}
	return name
}

func SafeName(name string) string {
	reservedNames := []string{"type", "var", "range", "map", "func", "const"}
	for _, it := range reservedNames {
		if name == it {
			return name + "_"
		}
	}
	return name
}

// LowerFirst lowercases the leading rune, for unexported symbol names.
func LowerFirst(name string) string {
	c := name[0]
	if c >= 'A' && c <= 'Z' {
		name = string(c+32) + name[1:]
	}
	return name
}

// CleanDir removes previously generated .go files from dir.
func CleanDir(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Panic(err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), ".go") {
			continue
		}
		os.Remove(filepath.Join(dir, entry.Name()))
	}
}
