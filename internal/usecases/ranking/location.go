package ranking

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultLocation     = "United States"
	DefaultLocationCode = 2840
)

// LocationResolver converte a localização em texto livre no código numérico do provedor
type LocationResolver interface {
	Resolve(location string) (code int, display string)
}

type locationEntry struct {
	Name string `yaml:"name"`
	Code int    `yaml:"code"`
}

type StaticLocationResolver struct {
	byName map[string]locationEntry
}

var builtinLocations = []locationEntry{
	{Name: "United States", Code: 2840},
	{Name: "United Kingdom", Code: 2826},
	{Name: "Canada", Code: 2124},
	{Name: "Australia", Code: 2036},
	{Name: "India", Code: 2356},
	{Name: "Germany", Code: 2276},
	{Name: "France", Code: 2250},
	{Name: "Spain", Code: 2724},
	{Name: "Italy", Code: 2380},
	{Name: "Brazil", Code: 2076},
	{Name: "Mexico", Code: 2484},
	{Name: "Portugal", Code: 2620},
	{Name: "New York,New York,United States", Code: 1023191},
	{Name: "Los Angeles,California,United States", Code: 1013962},
	{Name: "Chicago,Illinois,United States", Code: 1016367},
	{Name: "London,England,United Kingdom", Code: 1006886},
	{Name: "Sao Paulo,State of Sao Paulo,Brazil", Code: 1001773},
}

var locationAliases = map[string]string{
	"us":  "United States",
	"usa": "United States",
	"uk":  "United Kingdom",
	"gb":  "United Kingdom",
	"br":  "Brazil",
}

func NewStaticLocationResolver() *StaticLocationResolver {
	resolver := &StaticLocationResolver{byName: make(map[string]locationEntry, len(builtinLocations))}
	for _, entry := range builtinLocations {
		resolver.add(entry)
	}
	return resolver
}

// LoadLocationResolver acrescenta ao mapa padrão as localizações de um arquivo YAML
func LoadLocationResolver(path string) (*StaticLocationResolver, error) {
	resolver := NewStaticLocationResolver()
	if path == "" {
		return resolver, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler arquivo de localizações %s", path)
	}

	var file struct {
		Locations []locationEntry `yaml:"locations"`
	}
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar arquivo de localizações")
	}

	for _, entry := range file.Locations {
		if entry.Name == "" || entry.Code <= 0 {
			continue
		}
		resolver.add(entry)
	}

	return resolver, nil
}

func (r *StaticLocationResolver) add(entry locationEntry) {
	r.byName[normalizeLocation(entry.Name)] = entry
}

// Resolve retorna o código e o nome de exibição. Localização vazia vira Estados Unidos;
// desconhecida usa o código dos Estados Unidos e mantém o texto informado.
func (r *StaticLocationResolver) Resolve(location string) (int, string) {
	key := normalizeLocation(location)
	if alias, ok := locationAliases[key]; ok {
		key = normalizeLocation(alias)
	}

	if entry, ok := r.byName[key]; ok {
		return entry.Code, entry.Name
	}

	if display := strings.TrimSpace(location); display != "" {
		return DefaultLocationCode, display
	}
	return DefaultLocationCode, DefaultLocation
}

func normalizeLocation(location string) string {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(location)), ",")
	for i, p := range parts {
		parts[i] = strings.Join(strings.Fields(p), " ")
	}
	return strings.Join(parts, ",")
}
