package drive

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

var lsblkArgs = []string{"--json", "--bytes", "--output", "NAME,LABEL,TYPE,RM,HOTPLUG,MOUNTPOINT"}

type lsblkOutput struct {
	Blockdevices []lsblkDevice `json:"blockdevices"`
}

// RM and HOTPLUG are booleans in recent util-linux and "0"/"1" strings in older releases.
type lsblkDevice struct {
	Name       string        `json:"name"`
	Label      *string       `json:"label"`
	Type       string        `json:"type"`
	Removable  any           `json:"rm"`
	Hotplug    any           `json:"hotplug"`
	Mountpoint *string       `json:"mountpoint"`
	Children   []lsblkDevice `json:"children"`
}

// parseLSBLK flattens lsblk JSON into mounts. Partitions inherit the removable
// flag of their parent disk; unmounted devices and swap are dropped.
func parseLSBLK(data []byte) ([]Mount, error) {
	var out lsblkOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode lsblk output: %w", err)
	}
	var mounts []Mount
	for _, dev := range out.Blockdevices {
		mounts = appendLSBLKDevice(mounts, dev, false)
	}
	return mounts, nil
}

func appendLSBLKDevice(mounts []Mount, dev lsblkDevice, parentRemovable bool) []Mount {
	removable := parentRemovable || parseFlag(dev.Removable) || parseFlag(dev.Hotplug)
	if mp := strings.TrimSpace(deref(dev.Mountpoint)); mp != "" && mp != "[SWAP]" {
		mounts = append(mounts, Mount{
			Path:      mp,
			Device:    "/dev/" + dev.Name,
			Label:     deref(dev.Label),
			Removable: removable,
		})
	}
	for _, child := range dev.Children {
		mounts = appendLSBLKDevice(mounts, child, removable)
	}
	return mounts
}

func parseFlag(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		return err == nil && b
	case float64:
		return v != 0
	default:
		return false
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
