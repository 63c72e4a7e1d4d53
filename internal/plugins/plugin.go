// Package plugins implementa el sistema de plugins con un registro estático:
// las implementaciones conocidas se compilan dentro del binario y se
// seleccionan por id. No se carga código externo en runtime; la tabla
// `plugins` solo persiste metadatos y el flag de habilitado.
package plugins

import "github.com/gofiber/fiber/v2"

// Metadata identifica un plugin.
type Metadata struct {
	ID          string
	Name        string
	Version     string
	Description string
	Author      string
}

// Plugin contrato que implementa todo plugin compilado.
// Initialize monta las rutas del plugin bajo /api/plugins/<id>;
// Destroy libera recursos al deshabilitarlo o al apagar.
type Plugin interface {
	Metadata() Metadata
	Initialize(router fiber.Router) error
	Destroy() error
}

// registry plugins conocidos, indexados por id. Se llena en init() de cada
// implementación.
var registry = map[string]Plugin{}

// register añade un plugin al registro estático. Panic en id duplicado:
// es un error de compilación del binario, no de runtime.
func register(p Plugin) {
	id := p.Metadata().ID
	if _, exists := registry[id]; exists {
		panic("plugin duplicado: " + id)
	}
	registry[id] = p
}

// Lookup devuelve el plugin compilado con ese id.
func Lookup(id string) (Plugin, bool) {
	p, ok := registry[id]
	return p, ok
}

// Known lista los ids de todos los plugins compilados.
func Known() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	return ids
}
