package main

import (
	"fmt"
	"os"
	"regexp"

	"github.com/go-kratos/kratos/v2/log"
)

var (
	trueWord  = regexp.MustCompile(`(?i)\btrue\b`)
	falseWord = regexp.MustCompile(`(?i)\bfalse\b`)
)

// fixBooleans rewrites whole-word true/false, in any case, as True/False.
func fixBooleans(content []byte) []byte {
	content = trueWord.ReplaceAll(content, []byte("True"))
	return falseWord.ReplaceAll(content, []byte("False"))
}

// fixBooleanFiles rewrites every file in place. A missing or unreadable file
// is reported and the rest are still processed.
func fixBooleanFiles(paths []string, log *log.Helper) error {
	failed := 0
	for _, p := range paths {
		if err := fixBooleanFile(p); err != nil {
			log.Errorf("%v", err)
			failed++
			continue
		}
		log.Infof("fixed true/false values in %s", p)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be fixed", failed, len(paths))
	}
	return nil
}

func fixBooleanFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("file not found: %s", path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := os.WriteFile(path, fixBooleans(content), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
