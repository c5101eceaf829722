package db

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// PgpassPath returns the platform-appropriate .pgpass file path.
func PgpassPath() string {
	if custom := os.Getenv("PGPASSFILE"); custom != "" {
		return custom
	}
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), "postgresql", "pgpass.conf")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pgpass")
}

// LookupPgpass returns the password of the first .pgpass entry matching the
// connection, following libpq: fields are host:port:database:username:password,
// "*" matches anything, and "\" escapes ":" and "\". A missing file is not an error.
func LookupPgpass(path, host string, port int, database, username string) (string, bool) {
	if path == "" {
		return "", false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}

	want := []string{host, strconv.Itoa(port), database, username}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := splitPgpassLine(line)
		if len(fields) != 5 {
			continue
		}
		if pgpassMatches(fields[:4], want) {
			return fields[4], true
		}
	}
	return "", false
}

func pgpassMatches(fields, want []string) bool {
	for i, f := range fields {
		if f != "*" && f != want[i] {
			return false
		}
	}
	return true
}

// splitPgpassLine splits on unescaped colons and unescapes each field.
func splitPgpassLine(line string) []string {
	var fields []string
	var cur strings.Builder
	escaped := false
	for _, r := range line {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ':':
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	return append(fields, cur.String())
}
