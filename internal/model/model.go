package model

import "github.com/google/uuid"

// Box is a rectangular item waiting to be packed. Boxes are values: once
// handed to the packer a Box ends up either in exactly one PlacedItem or in
// the remainder.
type Box struct {
	ID     string `json:"id" yaml:"id" toml:"id"`
	Label  string `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
	Width  int    `json:"width" yaml:"width" toml:"width"`
	Height int    `json:"height" yaml:"height" toml:"height"`
}

// NewBox builds a box with a short random ID. Both sides must be positive.
func NewBox(w, h int) (Box, error) {
	if err := checkDimensions("box", w, h); err != nil {
		return Box{}, err
	}
	return Box{
		ID:     uuid.New().String()[:8],
		Width:  w,
		Height: h,
	}, nil
}

// Validate reports a DimensionError for boxes not built through NewBox.
func (b Box) Validate() error {
	return checkDimensions("box", b.Width, b.Height)
}

func (b Box) Area() int {
	return b.Width * b.Height
}

// PlacedItem records a box committed to a bin, in that bin's local coordinates.
type PlacedItem struct {
	Box   Box  `json:"box" yaml:"box" toml:"box"`
	BinID int  `json:"bin_id" yaml:"bin_id" toml:"bin_id"`
	Rect  Rect `json:"rect" yaml:"rect" toml:"rect"`
}

// Bin is a container with its current occupancy. OffsetX/OffsetY only position
// the bin on a rendered canvas; packing never looks at them.
type Bin struct {
	ID        int          `json:"id" yaml:"id" toml:"id"`
	Label     string       `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
	Width     int          `json:"width" yaml:"width" toml:"width"`
	Height    int          `json:"height" yaml:"height" toml:"height"`
	OffsetX   int          `json:"offset_x" yaml:"offset_x" toml:"offset_x"`
	OffsetY   int          `json:"offset_y" yaml:"offset_y" toml:"offset_y"`
	FreeRects []Rect       `json:"free_rects" yaml:"free_rects" toml:"free_rects"`
	Placed    []PlacedItem `json:"placed" yaml:"placed" toml:"placed"`
}

// NewBin builds an empty bin whose free space is a single rectangle covering
// the whole bin.
func NewBin(width, height, offsetX, offsetY, id int) (Bin, error) {
	if err := checkDimensions("bin", width, height); err != nil {
		return Bin{}, err
	}
	return Bin{
		ID:        id,
		Width:     width,
		Height:    height,
		OffsetX:   offsetX,
		OffsetY:   offsetY,
		FreeRects: []Rect{{X: 0, Y: 0, Width: width, Height: height}},
		Placed:    []PlacedItem{},
	}, nil
}

// Validate reports a DimensionError for bins not built through NewBin.
func (b Bin) Validate() error {
	return checkDimensions("bin", b.Width, b.Height)
}

// Bounds returns the bin rectangle in its own local coordinates.
func (b Bin) Bounds() Rect {
	return Rect{Width: b.Width, Height: b.Height}
}

// CanvasRect returns the bin rectangle positioned at its display offset.
func (b Bin) CanvasRect() Rect {
	return Rect{X: b.OffsetX, Y: b.OffsetY, Width: b.Width, Height: b.Height}
}

func (b Bin) Area() int {
	return b.Width * b.Height
}

// UsedArea returns the total area covered by placed items.
func (b Bin) UsedArea() int {
	var total int
	for _, p := range b.Placed {
		total += p.Rect.Area()
	}
	return total
}

// FreeArea returns the unoccupied area of the bin.
func (b Bin) FreeArea() int {
	return b.Area() - b.UsedArea()
}

// Efficiency returns the usage percentage.
func (b Bin) Efficiency() float64 {
	a := b.Area()
	if a == 0 {
		return 0
	}
	return float64(b.UsedArea()) / float64(a) * 100.0
}

// Clone returns a deep copy so the caller never shares slices with the original.
func (b Bin) Clone() Bin {
	cp := b
	cp.FreeRects = append([]Rect(nil), b.FreeRects...)
	cp.Placed = append([]PlacedItem(nil), b.Placed...)
	if cp.FreeRects == nil {
		cp.FreeRects = []Rect{}
	}
	if cp.Placed == nil {
		cp.Placed = []PlacedItem{}
	}
	return cp
}

// PlacementResult is the outcome of one packing run.
type PlacementResult struct {
	Placed    []PlacedItem `json:"placed" yaml:"placed" toml:"placed"`
	Remaining []Box        `json:"remaining" yaml:"remaining" toml:"remaining"`
	Bins      []Bin        `json:"bins" yaml:"bins" toml:"bins"`
}

// Efficiency returns the placed area as a percentage of the total bin area.
func (r PlacementResult) Efficiency() float64 {
	boxes := make([]Box, len(r.Placed))
	for i, p := range r.Placed {
		boxes[i] = p.Box
	}
	return PackedPercentage(boxes, r.Bins)
}

// BinsUsed counts bins holding at least one placed item.
func (r PlacementResult) BinsUsed() int {
	n := 0
	for _, b := range r.Bins {
		if len(b.Placed) > 0 {
			n++
		}
	}
	return n
}

// Heuristic names a candidate scoring rule.
type Heuristic string

const (
	HeuristicBestAreaFit      Heuristic = "best-area-fit"       // Least leftover area, short side tie-break
	HeuristicBestShortSideFit Heuristic = "best-short-side-fit" // Smallest short leftover side
	HeuristicBestLongSideFit  Heuristic = "best-long-side-fit"  // Smallest long leftover side
	HeuristicBottomLeft       Heuristic = "bottom-left"         // Lowest resulting bottom edge, then leftmost
	HeuristicContactPoint     Heuristic = "contact-point"       // Most perimeter touching edges and items
)

// Settings holds packing and demo-generation configuration.
type Settings struct {
	Heuristic    Heuristic `json:"heuristic" yaml:"heuristic" toml:"heuristic" mapstructure:"heuristic"`
	BinWidth     int       `json:"bin_width" yaml:"bin_width" toml:"bin_width" mapstructure:"bin_width"`
	BinHeight    int       `json:"bin_height" yaml:"bin_height" toml:"bin_height" mapstructure:"bin_height"`
	BinCount     int       `json:"bin_count" yaml:"bin_count" toml:"bin_count" mapstructure:"bin_count"`
	BoxCount     int       `json:"box_count" yaml:"box_count" toml:"box_count" mapstructure:"box_count"`
	MinBoxSide   int       `json:"min_box_side" yaml:"min_box_side" toml:"min_box_side" mapstructure:"min_box_side"`
	MaxBoxSide   int       `json:"max_box_side" yaml:"max_box_side" toml:"max_box_side" mapstructure:"max_box_side"`
	Seed         int64     `json:"seed" yaml:"seed" toml:"seed" mapstructure:"seed"`
	RenderBuffer int       `json:"render_buffer" yaml:"render_buffer" toml:"render_buffer" mapstructure:"render_buffer"` // Pixels between bins laid out side by side
}

func DefaultSettings() Settings {
	return Settings{
		Heuristic:    HeuristicBestAreaFit,
		BinWidth:     200,
		BinHeight:    200,
		BinCount:     1,
		BoxCount:     10,
		MinBoxSide:   1,
		MaxBoxSide:   99,
		Seed:         1,
		RenderBuffer: 10,
	}
}

// Project ties inputs, settings and an optional result together for save/load.
type Project struct {
	ID       string           `json:"id" yaml:"id" toml:"id"`
	Name     string           `json:"name" yaml:"name" toml:"name"`
	Settings Settings         `json:"settings" yaml:"settings" toml:"settings"`
	Boxes    []Box            `json:"boxes" yaml:"boxes" toml:"boxes"`
	Bins     []Bin            `json:"bins" yaml:"bins" toml:"bins"`
	Result   *PlacementResult `json:"result,omitempty" yaml:"result,omitempty" toml:"result,omitempty"`
}

func NewProject(name string) Project {
	return Project{
		ID:       uuid.New().String()[:8],
		Name:     name,
		Settings: DefaultSettings(),
		Boxes:    []Box{},
		Bins:     []Bin{},
	}
}
