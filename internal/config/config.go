package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	CSVPath string
	Locale  string
}

// Load charge la configuration depuis les variables d'environnement et la
// valide. Un argument positionnel, s'il est fourni, remplace TAGLOC_CSV_PATH.
func Load(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement (CI, etc.).
	}

	cfg := &Config{
		CSVPath: os.Getenv("TAGLOC_CSV_PATH"),
		Locale:  os.Getenv("TAGLOC_LOCALE"),
	}

	if len(args) > 1 {
		return nil, fmt.Errorf("config: un seul argument attendu (chemin du fichier CSV), %d reçus", len(args))
	}
	if len(args) == 1 {
		cfg.CSVPath = args[0]
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applique toutes les règles métier sur la configuration chargée.
func (c *Config) validate() error {
	if strings.TrimSpace(c.CSVPath) == "" {
		return fmt.Errorf("config: le chemin du fichier CSV est requis (argument ou TAGLOC_CSV_PATH)")
	}

	if strings.TrimSpace(c.Locale) == "" {
		// Valeur par défaut: le catalogue embarqué est japonais.
		c.Locale = "ja"
	}

	for _, r := range c.Locale {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && r != '-' {
			return fmt.Errorf("config: TAGLOC_LOCALE doit être une étiquette de langue BCP 47 (%q reçu)", c.Locale)
		}
	}

	return nil
}
