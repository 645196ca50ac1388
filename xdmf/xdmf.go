package xdmf

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
)

// Document mirrors the XDMF 3.0 descriptor layout the converter emits
// and the verifier parses.
type Document struct {
	XMLName xml.Name `xml:"Xdmf"`
	Version string   `xml:"Version,attr"`
	Domain  Domain   `xml:"Domain"`
}

type Domain struct {
	Grid Grid `xml:"Grid"`
}

type Grid struct {
	Name       string      `xml:"Name,attr"`
	GridType   string      `xml:"GridType,attr"`
	Topology   Topology    `xml:"Topology"`
	Geometry   Geometry    `xml:"Geometry"`
	Attributes []Attribute `xml:"Attribute"`
}

type Topology struct {
	TopologyType    string `xml:"TopologyType,attr"`
	NodesPerElement string `xml:"NodesPerElement,attr"`
}

type Geometry struct {
	GeometryType string     `xml:"GeometryType,attr"`
	DataItems    []DataItem `xml:"DataItem"`
}

type Attribute struct {
	Name          string   `xml:"Name,attr"`
	AttributeType string   `xml:"AttributeType,attr"`
	Center        string   `xml:"Center,attr"`
	DataItem      DataItem `xml:"DataItem"`
}

// DataItem points into an HDF5 file as "file.h5:/dataset".
type DataItem struct {
	Dimensions string `xml:"Dimensions,attr"`
	NumberType string `xml:"NumberType,attr"`
	Precision  string `xml:"Precision,attr"`
	Format     string `xml:"Format,attr"`
	Ref        string `xml:",chardata"`
}

// coordNames are the per-axis coordinate datasets backing the X_Y_Z
// geometry.
var coordNames = [3]string{"coord_x", "coord_y", "coord_z"}

// BuildDocument describes a surface stored in the named HDF5 file:
// a polyvertex grid with per-axis geometry arrays and one scalar node
// attribute per field.
func BuildDocument(s *Surface, h5Name string) Document {
	n := strconv.Itoa(s.Len())

	geom := Geometry{GeometryType: "X_Y_Z"}
	for _, name := range coordNames {
		geom.DataItems = append(geom.DataItems, DataItem{
			Dimensions: n,
			NumberType: "Float",
			Precision:  "8",
			Format:     "HDF",
			Ref:        fmt.Sprintf("%s:/%s", h5Name, name),
		})
	}

	grid := Grid{
		Name:     "Wall_Surface",
		GridType: "Uniform",
		Topology: Topology{TopologyType: "Polyvertex", NodesPerElement: n},
		Geometry: geom,
	}

	for _, f := range s.Fields {
		numberType, precision := "Float", "8"
		if f.IsInt() {
			numberType, precision = "Int", "4"
		}
		grid.Attributes = append(grid.Attributes, Attribute{
			Name:          f.Name,
			AttributeType: "Scalar",
			Center:        "Node",
			DataItem: DataItem{
				Dimensions: n,
				NumberType: numberType,
				Precision:  precision,
				Format:     "HDF",
				Ref:        fmt.Sprintf("%s:/%s", h5Name, f.Name),
			},
		})
	}

	return Document{Version: "3.0", Domain: Domain{Grid: grid}}
}

// WriteXDMF writes the descriptor for a surface whose data lives in
// h5Name, which ParaView resolves relative to the descriptor.
func WriteXDMF(path, h5Name string, s *Surface) error {
	doc := BuildDocument(s, h5Name)
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling descriptor: %w", err)
	}
	out := append([]byte("<?xml version=\"1.0\" ?>\n"), body...)
	out = append(out, '\n')
	return os.WriteFile(path, out, 0o644)
}

// ReadDocument parses a descriptor from disk.
func ReadDocument(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
