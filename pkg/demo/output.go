package demo

import (
	"encoding/json"
	"fmt"
	"io"
)

// ProductReport is the rendered form of one product.
type ProductReport struct {
	A       int       `json:"a"`
	B       int       `json:"b"`
	C       int       `json:"c"`
	D       int       `json:"d"`
	Q       string    `json:"q"`
	PQ      string    `json:"pq"`
	QTerms  []float64 `json:"q_terms"`
	PQTerms []float64 `json:"pq_terms"`
	PQLaTeX string    `json:"pq_latex"`
}

// Report summarizes a demo run.
type Report struct {
	Config   Config          `json:"config"`
	P        string          `json:"p"`
	Products []ProductReport `json:"products"`

	products []Product
}

// Series returns the evaluated products in enumeration order.
func (r Report) Series() []Product { return r.products }

// WriteText writes one "(p)(q) = p·q" line per product.
func WriteText(w io.Writer, r Report) error {
	for _, pr := range r.Products {
		if _, err := fmt.Fprintf(w, "(%s)(%s) = %s\n", r.P, pr.Q, pr.PQ); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// Write dispatches on the configured format.
func Write(w io.Writer, r Report) error {
	if r.Config.Format == "json" {
		return WriteJSON(w, r)
	}
	return WriteText(w, r)
}
