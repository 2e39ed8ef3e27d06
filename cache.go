package flex

import "math"

// invalidSentinel marks an empty/invalidated cache slot. NaN cannot be
// used for this (spec.md §4.2): NaN-safe equality would then make an
// invalidated slot match a genuine "unconstrained" query (availW=NaN) and
// report a false hit.
const invalidSentinel float32 = -1

const (
	measurementCacheSlots = 4
	layoutCacheSlots      = 2
)

// measurementCacheSlot is one memoized measureNode result (spec.md §3
// "Cache slots").
type measurementCacheSlot struct {
	availW, availH       float32
	widthMode, heightMode MeasureMode
	measuredW, measuredH float32
	usedAt               uint32
}

func (s *measurementCacheSlot) invalidate() {
	s.availW = invalidSentinel
	s.availH = invalidSentinel
	s.usedAt = 0
}

func (s *measurementCacheSlot) isEmpty() bool {
	return s.availW == invalidSentinel
}

// layoutCacheSlot is one memoized layoutNode result.
type layoutCacheSlot struct {
	availW, availH        float32
	widthMode, heightMode MeasureMode
	width, height         float32
	usedAt                uint32
}

func (s *layoutCacheSlot) invalidate() {
	s.availW = invalidSentinel
	s.availH = invalidSentinel
	s.usedAt = 0
}

func (s *layoutCacheSlot) isEmpty() bool {
	return s.availW == invalidSentinel
}

// fingerprint is the tuple of inputs a node's layout was last validly
// computed under — the basis for CalculateLayout's whole-tree skip
// decision (spec.md §4.4).
type fingerprint struct {
	lastAvailW, lastAvailH     float32
	lastOffsetX, lastOffsetY   float32
	lastDir                    Direction
	mainSize, crossSize        float32
	baseSize                   float32
	layoutValid                bool
}

// nodeCache bundles a node's measurement slots, layout slots, and
// fingerprint (spec.md §3 "Cache slots").
type nodeCache struct {
	measurements [measurementCacheSlots]measurementCacheSlot
	layouts      [layoutCacheSlots]layoutCacheSlot
	print        fingerprint
	tick         uint32
}

func newNodeCache() nodeCache {
	c := nodeCache{}
	for i := range c.measurements {
		c.measurements[i].invalidate()
	}
	for i := range c.layouts {
		c.layouts[i].invalidate()
	}
	return c
}

// clearMeasurements invalidates all four measurement slots.
func (c *nodeCache) clearMeasurements() {
	for i := range c.measurements {
		c.measurements[i].invalidate()
	}
}

// clearLayouts invalidates both layout slots and the fingerprint.
func (c *nodeCache) clearLayouts() {
	for i := range c.layouts {
		c.layouts[i].invalidate()
	}
	c.print.layoutValid = false
}

// clearAll invalidates everything (spec.md §4.4 markDirty contract).
func (c *nodeCache) clearAll() {
	c.clearMeasurements()
	c.clearLayouts()
}

// findMeasurement scans the measurement slots for a hit under the cache
// lookup policy of spec.md §4.2 and returns the cached size plus ok=true
// on a hit. It does not mutate usedAt; call touchMeasurement after use.
func (c *nodeCache) findMeasurement(availW, availH float32, widthMode, heightMode MeasureMode) (w, h float32, slot int, ok bool) {
	for i := range c.measurements {
		s := &c.measurements[i]
		if s.isEmpty() || s.widthMode != widthMode || s.heightMode != heightMode {
			continue
		}
		if measurementSlotMatches(s, availW, availH, widthMode, heightMode) {
			return s.measuredW, s.measuredH, i, true
		}
	}
	return 0, 0, -1, false
}

// measurementSlotMatches implements the per-mode hit rules of spec.md
// §4.2: exactly requires an identical available size; at-most requires
// the cached available space to dominate the request AND the cached
// measured size to already satisfy the tighter constraint (no clamp would
// change the result); undefined matches any undefined-mode slot.
func measurementSlotMatches(s *measurementCacheSlot, availW, availH float32, widthMode, heightMode MeasureMode) bool {
	if !dimensionMatches(s.availW, availW, s.measuredW, widthMode) {
		return false
	}
	if !dimensionMatches(s.availH, availH, s.measuredH, heightMode) {
		return false
	}
	return true
}

func dimensionMatches(cachedAvail, requestedAvail, measured float32, mode MeasureMode) bool {
	switch mode {
	case MeasureModeUndefined:
		return true
	case MeasureModeExactly:
		return isNaNSafeEqual(cachedAvail, requestedAvail)
	case MeasureModeAtMost:
		if isNaNSafeEqual(cachedAvail, requestedAvail) {
			return true
		}
		if isUndefinedFloat(cachedAvail) || isUndefinedFloat(requestedAvail) {
			return false
		}
		return cachedAvail >= requestedAvail && measured <= requestedAvail
	default:
		return false
	}
}

// insertMeasurement writes a new measurement into the least-recently-used
// slot (spec.md §4.2 "insert into the least-recently-used slot").
func (c *nodeCache) insertMeasurement(availW, availH float32, widthMode, heightMode MeasureMode, w, h float32) {
	idx := c.lruMeasurementSlot()
	c.tick++
	c.measurements[idx] = measurementCacheSlot{
		availW: availW, availH: availH,
		widthMode: widthMode, heightMode: heightMode,
		measuredW: w, measuredH: h,
		usedAt: c.tick,
	}
}

func (c *nodeCache) touchMeasurement(idx int) {
	c.tick++
	c.measurements[idx].usedAt = c.tick
}

func (c *nodeCache) lruMeasurementSlot() int {
	best := 0
	var bestUsed uint32 = math.MaxUint32
	for i := range c.measurements {
		if c.measurements[i].isEmpty() {
			return i
		}
		if c.measurements[i].usedAt < bestUsed {
			bestUsed = c.measurements[i].usedAt
			best = i
		}
	}
	return best
}

// findLayout scans the layout cache slots for an exact-match hit.
func (c *nodeCache) findLayout(availW, availH float32, widthMode, heightMode MeasureMode) (w, h float32, ok bool) {
	for i := range c.layouts {
		s := &c.layouts[i]
		if s.isEmpty() || s.widthMode != widthMode || s.heightMode != heightMode {
			continue
		}
		if isNaNSafeEqual(s.availW, availW) && isNaNSafeEqual(s.availH, availH) {
			c.tick++
			s.usedAt = c.tick
			return s.width, s.height, true
		}
	}
	return 0, 0, false
}

func (c *nodeCache) insertLayout(availW, availH float32, widthMode, heightMode MeasureMode, w, h float32) {
	idx := 0
	var bestUsed uint32 = math.MaxUint32
	for i := range c.layouts {
		if c.layouts[i].isEmpty() {
			idx = i
			bestUsed = 0
			break
		}
		if c.layouts[i].usedAt < bestUsed {
			bestUsed = c.layouts[i].usedAt
			idx = i
		}
	}
	c.tick++
	c.layouts[idx] = layoutCacheSlot{
		availW: availW, availH: availH,
		widthMode: widthMode, heightMode: heightMode,
		width: w, height: h,
		usedAt: c.tick,
	}
}
