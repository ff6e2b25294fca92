package convert

import (
	"os"
	"path/filepath"
	"strings"

	"l2s/common"
)

// buildOutputPath returns path of the converted stylesheet. src is the
// source path relative to the processed directory or archive (just the base
// name for a single file). When dst names an existing directory, or when
// many sources are processed, the relative structure is recreated under dst,
// otherwise dst is the output file itself.
func buildOutputPath(src, dst string, many bool, syntax common.TargetSyntax) string {
	if !many && !isDirectory(dst) && !strings.HasSuffix(dst, string(filepath.Separator)) {
		return dst
	}
	if !many {
		src = filepath.Base(src)
	}
	return filepath.Join(dst, replaceExt(src, syntax))
}

// replaceExt switches ".less" to the target extension, other names get
// target extension appended.
func replaceExt(name string, syntax common.TargetSyntax) string {
	if isLessFile(name) {
		name = name[:len(name)-len(lessExt)]
	}
	return name + syntax.Ext()
}

func isDirectory(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
