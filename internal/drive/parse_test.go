package drive

import "testing"

func TestParseLSBLK(t *testing.T) {
	payload := []byte(`{
   "blockdevices": [
      {"name":"nvme0n1", "label":null, "type":"disk", "rm":false, "hotplug":false, "mountpoint":null,
         "children": [
            {"name":"nvme0n1p1", "label":"EFI", "type":"part", "rm":false, "hotplug":false, "mountpoint":"/boot/efi"},
            {"name":"nvme0n1p2", "label":null, "type":"part", "rm":false, "hotplug":false, "mountpoint":"/"},
            {"name":"nvme0n1p3", "label":null, "type":"part", "rm":false, "hotplug":false, "mountpoint":"[SWAP]"}
         ]
      },
      {"name":"sdb", "label":null, "type":"disk", "rm":true, "hotplug":true, "mountpoint":null,
         "children": [
            {"name":"sdb1", "label":"STICK", "type":"part", "rm":false, "hotplug":false, "mountpoint":"/run/media/user/STICK"}
         ]
      },
      {"name":"sdc", "label":"CARD", "type":"disk", "rm":"1", "hotplug":"0", "mountpoint":"/mnt/card"}
   ]
}`)

	mounts, err := parseLSBLK(payload)
	if err != nil {
		t.Fatalf("parseLSBLK returned error: %v", err)
	}
	if len(mounts) != 4 {
		t.Fatalf("expected 4 mounts, got %d: %+v", len(mounts), mounts)
	}

	byPath := make(map[string]Mount, len(mounts))
	for _, m := range mounts {
		byPath[m.Path] = m
	}
	if _, ok := byPath["[SWAP]"]; ok {
		t.Fatal("swap should be dropped")
	}
	if byPath["/"].Removable {
		t.Fatal("root filesystem should not be removable")
	}
	stick := byPath["/run/media/user/STICK"]
	if !stick.Removable || stick.Device != "/dev/sdb1" || stick.Label != "STICK" {
		t.Fatalf("unexpected stick mount: %+v", stick)
	}
	if !byPath["/mnt/card"].Removable {
		t.Fatal("string rm flag should parse as removable")
	}
}

func TestParseLSBLKInvalid(t *testing.T) {
	if _, err := parseLSBLK([]byte("not json")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestParseMountTable(t *testing.T) {
	output := `/dev/disk3s1s1 on / (apfs, sealed, local, read-only, journaled)
devfs on /dev (devfs, local, nobrowse)
/dev/disk4s1 on /Volumes/USB STICK (msdos, local, nodev, nosuid, noowners)
map auto_home on /System/Volumes/Data/home (autofs, automounted, nobrowse)
garbage line
`
	mounts := parseMountTable(output)
	if len(mounts) != 4 {
		t.Fatalf("expected 4 mounts, got %d: %+v", len(mounts), mounts)
	}
	usb := mounts[2]
	if usb.Path != "/Volumes/USB STICK" || usb.Device != "/dev/disk4s1" {
		t.Fatalf("unexpected usb mount: %+v", usb)
	}
	if usb.Removable {
		t.Fatal("mount(8) output carries no removable flag here")
	}
	if mounts[3].Device != "map auto_home" {
		t.Fatalf("expected device with spaces, got %q", mounts[3].Device)
	}
}
