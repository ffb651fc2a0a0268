// seed_profiles genera un script SQL para poblar perfiles del personal y su rol
// a partir de un CSV (email,nombre,password[,rol]).
//
// Uso: go run ./cmd/seed_profiles [--latin1] [ruta/personal.csv]
// Por defecto busca personal.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_profiles.sql
package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Parqueadero-api/internal/domain/entity"
)

type staff struct {
	email, name, password, role string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var latin1 bool
	cmd := &cobra.Command{
		Use:           "seed_profiles [ruta/personal.csv]",
		Short:         "Genera el SQL de perfiles del personal y sus roles",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			csvPath := "personal.csv"
			if len(args) > 0 {
				csvPath = args[0]
			}
			return generate(cmd.OutOrStdout(), csvPath, latin1)
		},
	}
	cmd.Flags().BoolVar(&latin1, "latin1", false, "el CSV viene en ISO-8859-1 (exportado desde Excel)")
	return cmd
}

func generate(stdout io.Writer, csvPath string, latin1 bool) error {
	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("abrir CSV: %w", err)
	}
	defer f.Close()

	var in io.Reader = f
	if latin1 {
		in = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}
	people, err := readStaff(in)
	if err != nil {
		return fmt.Errorf("leer CSV: %w", err)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_profiles.sql")
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("crear archivo: %w", err)
	}
	defer out.Close()

	if err := writeSQL(out, people, hashPassword); err != nil {
		return fmt.Errorf("escribir SQL: %w", err)
	}
	fmt.Fprintf(stdout, "Generado %s: %d perfiles\n", outPath, len(people))
	return nil
}

// readStaff lee filas email,nombre,password[,rol]; una cabecera con "email" se salta.
func readStaff(r io.Reader) ([]staff, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var people []staff
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(rec[0]), "email") {
			continue
		}
		if len(rec) < 3 {
			return nil, fmt.Errorf("línea %d: se esperan al menos 3 columnas", line)
		}
		s := staff{
			email:    strings.TrimSpace(rec[0]),
			name:     strings.TrimSpace(rec[1]),
			password: rec[2],
		}
		if len(rec) > 3 {
			s.role = strings.TrimSpace(rec[3])
		}
		if s.email == "" || s.password == "" {
			return nil, fmt.Errorf("línea %d: email y password son obligatorios", line)
		}
		if s.role != "" && !entity.IsValidRole(s.role) {
			return nil, fmt.Errorf("línea %d: rol desconocido %q", line, s.role)
		}
		people = append(people, s)
	}
	return people, nil
}

// writeSQL emite upserts idempotentes: el perfil por email y, si hay rol, la única asignación por user_id.
func writeSQL(w io.Writer, people []staff, hash func(string) (string, error)) error {
	var b strings.Builder
	b.WriteString("-- Perfiles del personal y su rol\n")
	b.WriteString("-- Generado por cmd/seed_profiles\n\n")

	for _, p := range people {
		h, err := hash(p.password)
		if err != nil {
			return fmt.Errorf("hash %s: %w", p.email, err)
		}
		id := uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+strings.ToLower(p.email)))
		fmt.Fprintf(&b, "INSERT INTO profiles (id, email, name, password_hash)\n")
		fmt.Fprintf(&b, "VALUES ('%s', '%s', '%s', '%s')\n", id, escapeSQL(p.email), escapeSQL(p.name), escapeSQL(h))
		b.WriteString("ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, password_hash = EXCLUDED.password_hash, updated_at = now();\n")
		if p.role != "" {
			fmt.Fprintf(&b, "INSERT INTO user_roles (id, user_id, role)\n")
			fmt.Fprintf(&b, "SELECT '%s', id, '%s' FROM profiles WHERE email = '%s'\n", uuid.New(), p.role, escapeSQL(p.email))
			b.WriteString("ON CONFLICT (user_id) DO UPDATE SET role = EXCLUDED.role, updated_at = now();\n")
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func hashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(h), err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
