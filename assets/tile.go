package assets

// Tile identifies one baked-in tile image.
type Tile uint8

// Terrain tiles.
const (
	TerrainPlain Tile = iota
	TerrainSwamp
	TerrainWall
)

// Resource tiles.
const (
	ResourceSource Tile = iota + TerrainWall + 1
	ResourceHydrogen
	ResourceOxygen
	ResourceKeanium
	ResourceLemergium
	ResourceUtrium
	ResourceZynthium
	ResourceCatalyst
	ResourceUnknown
)

// Structure tiles.
const (
	StructureConstructedWall Tile = iota + ResourceUnknown + 1
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
	StructureUnknown

	tileCount
)

// tileFiles maps each tile to its directory and file name under tiles/.
var tileFiles = [tileCount]struct{ dir, file string }{
	TerrainPlain: {"terrains", "plain.png"},
	TerrainSwamp: {"terrains", "swamp.png"},
	TerrainWall:  {"terrains", "wall.png"},

	ResourceSource:    {"resources", "source.png"},
	ResourceHydrogen:  {"resources", "H.png"},
	ResourceOxygen:    {"resources", "O.png"},
	ResourceKeanium:   {"resources", "K.png"},
	ResourceLemergium: {"resources", "L.png"},
	ResourceUtrium:    {"resources", "U.png"},
	ResourceZynthium:  {"resources", "Z.png"},
	ResourceCatalyst:  {"resources", "X.png"},
	ResourceUnknown:   {"resources", "unknown.png"},

	StructureConstructedWall: {"structures", "constructedWall.png"},
	StructureContainer:       {"structures", "container.png"},
	StructureController:      {"structures", "controller.png"},
	StructureExtension:       {"structures", "extension.png"},
	StructureExtractor:       {"structures", "extractor.png"},
	StructureFactory:         {"structures", "factory.png"},
	StructureLab:             {"structures", "lab.png"},
	StructureLink:            {"structures", "link.png"},
	StructureNuker:           {"structures", "nuker.png"},
	StructureObserver:        {"structures", "observer.png"},
	StructurePowerSpawn:      {"structures", "powerSpawn.png"},
	StructureRampart:         {"structures", "rampart.png"},
	StructureRoad:            {"structures", "road.png"},
	StructureSpawn:           {"structures", "spawn.png"},
	StructureStorage:         {"structures", "storage.png"},
	StructureTerminal:        {"structures", "terminal.png"},
	StructureTower:           {"structures", "tower.png"},
	StructureUnknown:         {"structures", "icon.png"},
}

// Tiles returns every known tile in declaration order.
func Tiles() []Tile {
	all := make([]Tile, tileCount)
	for i := range all {
		all[i] = Tile(i)
	}
	return all
}

// Valid reports whether t is a known tile.
func (t Tile) Valid() bool {
	return t < tileCount
}

// Path returns the tile's file path inside the asset file system.
func (t Tile) Path() string {
	if !t.Valid() {
		return ""
	}
	f := tileFiles[t]
	return "tiles/" + f.dir + "/" + f.file
}

// String returns "<dir>/<file>" for known tiles and "Unknown" otherwise.
func (t Tile) String() string {
	if !t.Valid() {
		return "Unknown"
	}
	f := tileFiles[t]
	return f.dir + "/" + f.file
}
