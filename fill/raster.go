package fill

import (
	"github.com/morphonets/snt-trace/volume"
	"github.com/morphonets/snt-trace/voxelstore"
)

// Mask rasterises store into a binary 8-bit volume: 255 for every voxel
// present in store with g <= threshold ("in-fill", per the spec's Fill
// data model), 0 elsewhere, matching the ImageJ 8-bit mask convention.
func Mask(store *voxelstore.NodeStore, w, h, d int, cal volume.Calibration, threshold float64) *volume.Dense {
	out := volume.NewBlank(w, h, d, cal, volume.EightBit)
	store.Range(func(n *voxelstore.SearchNode) {
		if n.G <= threshold {
			out.Set(n.X, n.Y, n.Z, 255)
		}
	})
	return out
}

// Distance rasterises store into a volume of each in-fill voxel's g
// (cost-distance from the nearest seed); voxels absent from store, or
// present with g > threshold, are left at 0.
func Distance(store *voxelstore.NodeStore, w, h, d int, cal volume.Calibration, threshold float64) *volume.Dense {
	out := volume.NewBlank(w, h, d, cal, volume.ThirtyTwoBit)
	store.Range(func(n *voxelstore.SearchNode) {
		if n.G <= threshold {
			out.Set(n.X, n.Y, n.Z, n.G)
		}
	})
	return out
}

// Intensity rasterises store into a volume carrying src's original
// voxel value at every in-fill voxel and 0 elsewhere, the visualisation
// counterpart to Mask: a cutout of src restricted to the fill.
func Intensity(store *voxelstore.NodeStore, src volume.Volume, threshold float64) *volume.Dense {
	w, h, d := src.Dimensions()
	out := volume.NewBlank(w, h, d, src.Spacing(), src.BitDepth())
	store.Range(func(n *voxelstore.SearchNode) {
		if n.G <= threshold {
			out.Set(n.X, n.Y, n.Z, src.Value(n.X, n.Y, n.Z))
		}
	})
	return out
}
