// Package layerfs implements a layered view over a small set of base
// directories together with a single writable directory.
//
// Reads are resolved across the mounted base paths, the most recently
// mounted path taking precedence. Writes, appends, deletions and directory
// creation only ever touch the write directory, so files on the mounts are
// never modified.
//
// All state lives in a [Handler], which must be set up before use:
//
//	h := layerfs.New()
//	if err := h.Setup(layerfs.Descriptor{
//		WriteDir:  "/srv/data/save",
//		BasePaths: [layerfs.MaxMounts]string{"/srv/data/base", "/srv/data/mod"},
//	}); err != nil {
//		return err
//	}
//	defer h.Shutdown()
//
//	buf, err := h.Read("config/settings.ini")
//	if err != nil {
//		return err
//	}
//	defer h.Free(buf)
package layerfs
