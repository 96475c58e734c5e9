package pokeapi

type NamedApiResource struct {
	Name string `json:"name"`
	Url  string `json:"url"`
}

type listResponse struct {
	Count    int                `json:"count"`
	Next     *string            `json:"next"`
	Previous *string            `json:"previous"`
	Results  []NamedApiResource `json:"results"`
}

type typeResponse struct {
	Id              int    `json:"id"`
	Name            string `json:"name"`
	DamageRelations struct {
		NoDamageTo     []NamedApiResource `json:"no_damage_to"`
		HalfDamageTo   []NamedApiResource `json:"half_damage_to"`
		DoubleDamageTo []NamedApiResource `json:"double_damage_to"`
	} `json:"damage_relations"`
}

type locationResponse struct {
	Id    int                `json:"id"`
	Name  string             `json:"name"`
	Areas []NamedApiResource `json:"areas"`
}

type versionDetail struct {
	Version   NamedApiResource `json:"version"`
	MaxChance int              `json:"max_chance"`
}

type pokemonEncounter struct {
	Pokemon        NamedApiResource `json:"pokemon"`
	VersionDetails []versionDetail  `json:"version_details"`
}

type locationAreaResponse struct {
	Id                int                `json:"id"`
	Name              string             `json:"name"`
	PokemonEncounters []pokemonEncounter `json:"pokemon_encounters"`
}

type typeSlot struct {
	Slot int              `json:"slot"`
	Type NamedApiResource `json:"type"`
}

type baseStat struct {
	BaseStat int              `json:"base_stat"`
	Effort   int              `json:"effort"`
	Stat     NamedApiResource `json:"stat"`
}

type pokemonResponse struct {
	Id    int        `json:"id"`
	Name  string     `json:"name"`
	Types []typeSlot `json:"types"`
	Stats []baseStat `json:"stats"`
}
