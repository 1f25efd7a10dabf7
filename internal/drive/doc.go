// Package drive watches the operating system mount table for newly attached
// removable storage.
//
// A platform Lister reports the current mounts (lsblk on Linux, mount(8) on
// macOS, the Win32 drive APIs on Windows). Monitor polls the lister at a fixed
// interval, keeps only the previous snapshot, and returns as soon as a
// removable mount appears that was not present on the tick before. Mounts that
// were already attached when polling started are never reported. On Linux a
// udev netlink listener can wake the monitor early so detection does not wait
// for the next tick.
package drive
