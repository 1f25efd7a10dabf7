package drive

import (
	"bufio"
	"strings"
)

// parseMountTable parses BSD-style mount(8) output:
//
//	/dev/disk4s1 on /Volumes/USB STICK (msdos, local, nodev, nosuid, noowners)
func parseMountTable(output string) []Mount {
	var mounts []Mount
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		device, rest, ok := strings.Cut(line, " on ")
		if !ok {
			continue
		}
		path := rest
		var opts string
		if idx := strings.LastIndex(rest, " ("); idx >= 0 && strings.HasSuffix(rest, ")") {
			path = rest[:idx]
			opts = rest[idx+2 : len(rest)-1]
		}
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		mounts = append(mounts, Mount{
			Path:      path,
			Device:    strings.TrimSpace(device),
			Removable: hasMountOption(opts, "removable"),
		})
	}
	return mounts
}

func hasMountOption(opts, want string) bool {
	for _, opt := range strings.Split(opts, ",") {
		if strings.TrimSpace(opt) == want {
			return true
		}
	}
	return false
}
