package roomrender

import (
	"fmt"

	"github.com/gogpu/roomrender/assets"
)

// Terrain is the ground type of a cell.
type Terrain uint8

// Terrain kinds.
const (
	TerrainPlain Terrain = iota
	TerrainSwamp
	TerrainWall
)

// Terrain mask bits as stored in packed room terrain.
const (
	TerrainMaskWall  = 1
	TerrainMaskSwamp = 2
)

var terrainNames = [...]string{"plain", "swamp", "wall"}

// TerrainFromMask converts a terrain bitmask into a Terrain.
// The wall bit wins over the swamp bit; every other value is plain.
func TerrainFromMask(mask uint8) Terrain {
	switch {
	case mask&TerrainMaskWall != 0:
		return TerrainWall
	case mask&TerrainMaskSwamp != 0:
		return TerrainSwamp
	default:
		return TerrainPlain
	}
}

// ParseTerrain returns the terrain named s ("plain", "swamp" or "wall").
func ParseTerrain(s string) (Terrain, error) {
	for i, name := range terrainNames {
		if s == name {
			return Terrain(i), nil
		}
	}
	return TerrainPlain, fmt.Errorf("%w: %q", ErrUnknownTerrain, s)
}

// Tile returns the asset drawn for t.
func (t Terrain) Tile() assets.Tile {
	switch t {
	case TerrainSwamp:
		return assets.TerrainSwamp
	case TerrainWall:
		return assets.TerrainWall
	default:
		return assets.TerrainPlain
	}
}

func (t Terrain) String() string {
	if int(t) < len(terrainNames) {
		return terrainNames[t]
	}
	return fmt.Sprintf("Terrain(%d)", t)
}

// Resource is a harvestable resource.
type Resource uint8

// Resource kinds.
const (
	ResourceUnknown Resource = iota
	ResourceSource
	ResourceHydrogen
	ResourceOxygen
	ResourceKeanium
	ResourceLemergium
	ResourceUtrium
	ResourceZynthium
	ResourceCatalyst
)

var resourceTypes = map[string]Resource{
	"source": ResourceSource,
	"energy": ResourceSource,
	"H":      ResourceHydrogen,
	"O":      ResourceOxygen,
	"K":      ResourceKeanium,
	"L":      ResourceLemergium,
	"U":      ResourceUtrium,
	"Z":      ResourceZynthium,
	"X":      ResourceCatalyst,
}

var resourceNames = [...]string{
	ResourceUnknown:   "unknown",
	ResourceSource:    "source",
	ResourceHydrogen:  "H",
	ResourceOxygen:    "O",
	ResourceKeanium:   "K",
	ResourceLemergium: "L",
	ResourceUtrium:    "U",
	ResourceZynthium:  "Z",
	ResourceCatalyst:  "X",
}

// ResourceFromType maps a resource type name ("source", "energy", or a
// mineral symbol such as "H") to a Resource. Unrecognized names map to
// ResourceUnknown.
func ResourceFromType(s string) Resource {
	return resourceTypes[s]
}

// Tile returns the asset drawn for r.
func (r Resource) Tile() assets.Tile {
	switch r {
	case ResourceSource:
		return assets.ResourceSource
	case ResourceHydrogen:
		return assets.ResourceHydrogen
	case ResourceOxygen:
		return assets.ResourceOxygen
	case ResourceKeanium:
		return assets.ResourceKeanium
	case ResourceLemergium:
		return assets.ResourceLemergium
	case ResourceUtrium:
		return assets.ResourceUtrium
	case ResourceZynthium:
		return assets.ResourceZynthium
	case ResourceCatalyst:
		return assets.ResourceCatalyst
	default:
		return assets.ResourceUnknown
	}
}

func (r Resource) String() string {
	if int(r) < len(resourceNames) {
		return resourceNames[r]
	}
	return resourceNames[ResourceUnknown]
}

// Structure is a buildable structure.
type Structure uint8

// Structure kinds.
const (
	StructureUnknown Structure = iota
	StructureConstructedWall
	StructureContainer
	StructureController
	StructureExtension
	StructureExtractor
	StructureFactory
	StructureLab
	StructureLink
	StructureNuker
	StructureObserver
	StructurePowerSpawn
	StructureRampart
	StructureRoad
	StructureSpawn
	StructureStorage
	StructureTerminal
	StructureTower
)

var structureNames = [...]string{
	StructureUnknown:         "unknown",
	StructureConstructedWall: "constructedWall",
	StructureContainer:       "container",
	StructureController:      "controller",
	StructureExtension:       "extension",
	StructureExtractor:       "extractor",
	StructureFactory:         "factory",
	StructureLab:             "lab",
	StructureLink:            "link",
	StructureNuker:           "nuker",
	StructureObserver:        "observer",
	StructurePowerSpawn:      "powerSpawn",
	StructureRampart:         "rampart",
	StructureRoad:            "road",
	StructureSpawn:           "spawn",
	StructureStorage:         "storage",
	StructureTerminal:        "terminal",
	StructureTower:           "tower",
}

var structureTiles = [...]assets.Tile{
	StructureUnknown:         assets.StructureUnknown,
	StructureConstructedWall: assets.StructureConstructedWall,
	StructureContainer:       assets.StructureContainer,
	StructureController:      assets.StructureController,
	StructureExtension:       assets.StructureExtension,
	StructureExtractor:       assets.StructureExtractor,
	StructureFactory:         assets.StructureFactory,
	StructureLab:             assets.StructureLab,
	StructureLink:            assets.StructureLink,
	StructureNuker:           assets.StructureNuker,
	StructureObserver:        assets.StructureObserver,
	StructurePowerSpawn:      assets.StructurePowerSpawn,
	StructureRampart:         assets.StructureRampart,
	StructureRoad:            assets.StructureRoad,
	StructureSpawn:           assets.StructureSpawn,
	StructureStorage:         assets.StructureStorage,
	StructureTerminal:        assets.StructureTerminal,
	StructureTower:           assets.StructureTower,
}

// StructureFromType maps a structure type name such as "spawn" or
// "powerSpawn" to a Structure. Unrecognized names map to StructureUnknown.
func StructureFromType(s string) Structure {
	for i := StructureConstructedWall; int(i) < len(structureNames); i++ {
		if structureNames[i] == s {
			return i
		}
	}
	return StructureUnknown
}

// Tile returns the asset drawn for s.
func (s Structure) Tile() assets.Tile {
	if int(s) < len(structureTiles) {
		return structureTiles[s]
	}
	return assets.StructureUnknown
}

func (s Structure) String() string {
	if int(s) < len(structureNames) {
		return structureNames[s]
	}
	return structureNames[StructureUnknown]
}
