package procs

import (
	"strconv"
	"strings"
)

// parseGroupMembers extracts the member list of one group from /etc/group
// content (name:passwd:gid:member,member,...).
func parseGroupMembers(content, groupName string) []string {
	for _, line := range strings.Split(content, "\n") {
		fields := strings.Split(line, ":")
		if len(fields) < 4 || fields[0] != groupName {
			continue
		}

		var members []string
		for _, member := range strings.Split(fields[3], ",") {
			member = strings.TrimSpace(member)
			if member != "" {
				members = append(members, member)
			}
		}
		return members
	}

	return nil
}

// parseUserPIDs groups the output of `ps -o user=,pid=` by user.
func parseUserPIDs(psOutput string) map[string][]int {
	byUser := make(map[string][]int)
	for _, line := range strings.Split(psOutput, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		pid, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}

		byUser[fields[0]] = append(byUser[fields[0]], pid)
	}

	return byUser
}

// outPathFromEnviron scans NUL-separated /proc/<pid>/environ content for a
// non-empty out= variable.
func outPathFromEnviron(data []byte) string {
	for _, entry := range strings.Split(string(data), "\x00") {
		if path, ok := strings.CutPrefix(entry, "out="); ok && path != "" {
			return path
		}
	}

	return ""
}

// outPathFromEnvVars reads the builder's env-vars file, which records
// exported variables as `declare -x out="/nix/store/..."`.
func outPathFromEnvVars(content string) (string, bool) {
	for _, line := range strings.Split(content, "\n") {
		if !strings.HasPrefix(line, "declare -x out=") {
			continue
		}

		parts := strings.Split(line, "\"")
		if len(parts) < 2 || parts[1] == "" {
			return "", false
		}
		return parts[1], true
	}

	return "", false
}
