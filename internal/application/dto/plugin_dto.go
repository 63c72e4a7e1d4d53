package dto

import "time"

// InstallPluginRequest instala (registra) un plugin conocido.
// El id debe existir en el registro estático compilado; no se carga código externo.
type InstallPluginRequest struct {
	ID string `json:"id"`
}

// PluginResponse estado de un plugin.
type PluginResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Version     string    `json:"version"`
	Description string    `json:"description,omitempty"`
	Author      string    `json:"author,omitempty"`
	Enabled     bool      `json:"enabled"`
	Loaded      bool      `json:"loaded"` // inicializado en este proceso
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
