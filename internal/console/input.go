package console

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"rental/internal/models"
)

// VehicleInput collects vehicle data from line-oriented console input.
type VehicleInput struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewVehicleInput creates a VehicleInput reading from in and prompting on out.
func NewVehicleInput(in io.Reader, out io.Writer) *VehicleInput {
	return &VehicleInput{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// ReadLine prompts and returns the next trimmed line. ok is false at end of input.
func (vi *VehicleInput) ReadLine(prompt string) (line string, ok bool) {
	fmt.Fprint(vi.out, prompt)
	if !vi.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(vi.in.Text()), true
}

// NewVehicle reads name, brand and price and returns a vehicle with a fresh UUID.
func (vi *VehicleInput) NewVehicle() models.Vehicle {
	name, brand, price := vi.details()
	return models.NewVehicle(name, brand, price)
}

// VehicleWithID reads the UUID of an existing vehicle followed by its new details.
func (vi *VehicleInput) VehicleWithID() models.Vehicle {
	id := vi.VehicleID()
	name, brand, price := vi.details()
	return models.NewVehicleWithID(id, name, brand, price)
}

// VehicleID reads the UUID of an existing vehicle.
func (vi *VehicleInput) VehicleID() string {
	id, _ := vi.ReadLine("Enter vehicle UUID OR ID: ")
	return id
}

func (vi *VehicleInput) details() (name, brand string, price float64) {
	name, _ = vi.ReadLine("Enter vehicle name: ")
	brand, _ = vi.ReadLine("Enter vehicle brand: ")
	raw, _ := vi.ReadLine("Enter vehicle price: ")

	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		fmt.Fprintln(vi.out, "Invalid price format. Setting price to 0.")
		price = 0
	}
	return name, brand, price
}
