package networth

import (
	"fmt"
	"os"
	"path/filepath"
)

// PortfolioFile is the name of the investments file inside a data folder.
const PortfolioFile = "investments.jsonl"

// LoadPortfolio loads the portfolio from a data folder. A missing file is
// not an error: a fresh folder simply holds an empty portfolio.
func LoadPortfolio(path string) (*Portfolio, error) {
	filePath := filepath.Join(path, PortfolioFile)
	f, err := os.Open(filePath)
	if os.IsNotExist(err) {
		return NewPortfolio(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open portfolio file %q: %w", filePath, err)
	}
	defer f.Close()

	p, err := DecodePortfolio(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode portfolio file %q: %w", filePath, err)
	}
	return p, nil
}

// SavePortfolio saves the portfolio into a data folder, creating it if
// needed.
func SavePortfolio(path string, p *Portfolio) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("could not create portfolio folder %q: %w", path, err)
	}
	filePath := filepath.Join(path, PortfolioFile)
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("error opening portfolio file %q for writing: %w", filePath, err)
	}
	defer file.Close()

	return EncodePortfolio(file, p)
}
