package level

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lafriks/go-tiled"
)

// Object group names read from TMX files.
const (
	GroupSolids = "solids"
	GroupSpawns = "spawns"
	GroupMovers = "movers"
)

const defaultMoverPeriod = 4

// Load parses a TMX file. Rectangles in the solids and movers groups are
// footprints on the XZ plane; their "y" and "height" properties give the
// bottom and vertical size. It takes an fs.FS so callers can pass embed.FS
// or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if m.TileWidth <= 0 || m.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: invalid tile size %dx%d", tmxPath, m.TileWidth, m.TileHeight)
	}

	l := &Level{Name: strings.TrimSuffix(filepath.Base(tmxPath), ".tmx")}
	scaleX := 1 / float32(m.TileWidth)
	scaleZ := 1 / float32(m.TileHeight)

	for _, og := range m.ObjectGroups {
		for _, o := range og.Objects {
			box := footprint(o, scaleX, scaleZ)
			switch og.Name {
			case GroupSolids:
				l.Solids = append(l.Solids, box)
			case GroupMovers:
				l.Movers = append(l.Movers, Mover{
					Box:    box,
					Rise:   floatProp(o.Properties, "rise", 2),
					Period: floatProp(o.Properties, "period", defaultMoverPeriod),
				})
			case GroupSpawns:
				l.Spawns = append(l.Spawns, Spawn{
					Position: mgl32.Vec3{
						float32(o.X) * scaleX,
						floatProp(o.Properties, "y", 0),
						float32(o.Y) * scaleZ,
					},
					Yaw:    degrees(floatProp(o.Properties, "yaw", 225)),
					Pitch:  degrees(floatProp(o.Properties, "pitch", -30)),
					Preset: o.Properties.GetString("preset"),
					Index:  o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	// Sort spawns by index for consistent assignment
	sort.SliceStable(l.Spawns, func(i, j int) bool {
		return l.Spawns[i].Index < l.Spawns[j].Index
	})
	return l, nil
}

// LoadAll discovers all .tmx files in dir within fsys, loads each, and
// returns a map keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Level, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		l, err := Load(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		levels[l.Name] = l
		names = append(names, l.Name)
	}
	sort.Strings(names)
	return levels, names, nil
}

func footprint(o *tiled.Object, scaleX, scaleZ float32) cube.BBox {
	x0 := float32(o.X) * scaleX
	z0 := float32(o.Y) * scaleZ
	x1 := x0 + float32(o.Width)*scaleX
	z1 := z0 + float32(o.Height)*scaleZ
	y0 := floatProp(o.Properties, "y", 0)
	y1 := y0 + floatProp(o.Properties, "height", 1)
	return cube.Box(x0, y0, z0, x1, y1, z1)
}

// properties is the part of a Tiled property list the loader reads.
type properties interface {
	GetString(name string) string
}

// floatProp reads a numeric property, falling back to def when it is
// missing or malformed.
func floatProp(props properties, name string, def float32) float32 {
	raw := props.GetString(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 32)
	if err != nil {
		return def
	}
	return float32(v)
}

func degrees(d float32) float32 {
	return d * math32.Pi / 180
}
