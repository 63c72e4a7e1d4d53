package entity

import "time"

// PluginRecord estado persistido de un plugin instalado.
// El código del plugin NO se carga dinámicamente: las implementaciones
// conocidas se registran en compilación (ver internal/plugins) y esta fila
// solo guarda metadatos y el flag de habilitado.
type PluginRecord struct {
	ID          string
	Name        string
	Version     string
	Description string
	Author      string
	Enabled     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
