package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"rental/internal/services"
)

// Menu options.
const (
	OptionList = iota + 1
	OptionAdd
	OptionDelete
	OptionRent
	OptionReturn
	OptionExit
)

// ErrUnknownCommand is returned by RunCommand for names it does not handle.
var ErrUnknownCommand = errors.New("unknown command")

// Menu drives the vehicle catalog from the console.
type Menu struct {
	service *services.VehicleService
	input   *VehicleInput
	out     io.Writer
}

// NewMenu creates a Menu.
func NewMenu(service *services.VehicleService, input *VehicleInput, out io.Writer) *Menu {
	return &Menu{
		service: service,
		input:   input,
		out:     out,
	}
}

// Run shows the menu until the user exits, picks an option outside 1-6 or input ends.
func (m *Menu) Run() {
	for {
		m.printMenu()

		line, ok := m.input.ReadLine("Enter your choice: ")
		if !ok {
			fmt.Fprintln(m.out)
			return
		}
		choice, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(m.out, "Invalid option.")
			return
		}
		fmt.Fprintf(m.out, "You selected option: %d\n", choice)

		if !m.dispatch(choice) {
			return
		}
	}
}

// dispatch runs one menu option and reports whether the loop should continue.
func (m *Menu) dispatch(choice int) bool {
	switch choice {
	case OptionList:
		fmt.Fprintln(m.out, "Listing all vehicles...")
		m.ListVehicles()
	case OptionAdd:
		fmt.Fprintln(m.out, "Adding a new vehicle...")
		m.AddVehicle()
	case OptionDelete:
		fmt.Fprintln(m.out, "Removing a vehicle...")
		m.DeleteVehicle()
	case OptionRent:
		fmt.Fprintln(m.out, "Renting a vehicle...")
		fmt.Fprintln(m.out, "Renting is not available yet.")
	case OptionReturn:
		fmt.Fprintln(m.out, "Returning a vehicle...")
		fmt.Fprintln(m.out, "Returning is not available yet.")
	case OptionExit:
		fmt.Fprintln(m.out, "Goodbye!")
		return false
	default:
		fmt.Fprintln(m.out, "Invalid option.")
		return false
	}
	return true
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out, "\n======================")
	fmt.Fprintln(m.out, "Vehicle Rental System")
	fmt.Fprintln(m.out, "======================")
	fmt.Fprintln(m.out, "1. List Vehicles")
	fmt.Fprintln(m.out, "2. Add a Vehicle")
	fmt.Fprintln(m.out, "3. Remove a Vehicle")
	fmt.Fprintln(m.out, "4. Rent a Vehicle")
	fmt.Fprintln(m.out, "5. Return a Vehicle")
	fmt.Fprintln(m.out, "6. Exit")
}

// ListVehicles prints all vehicles.
func (m *Menu) ListVehicles() {
	fmt.Fprintln(m.out, "\n=== All Vehicles ===")
	m.service.ListVehicles()
}

// AddVehicle collects a new vehicle and adds it.
func (m *Menu) AddVehicle() bool {
	fmt.Fprintln(m.out, "\n=== Add New Vehicle ===")
	vehicle := m.input.NewVehicle()
	return m.service.AddVehicle(&vehicle)
}

// UpdateVehicle collects a UUID plus new details and updates that vehicle.
func (m *Menu) UpdateVehicle() bool {
	fmt.Fprintln(m.out, "\n=== Update Vehicle ===")
	vehicle := m.input.VehicleWithID()
	return m.service.UpdateVehicle(&vehicle)
}

// DeleteVehicle collects a UUID and deletes that vehicle.
func (m *Menu) DeleteVehicle() bool {
	fmt.Fprintln(m.out, "\n=== Delete Vehicle ===")
	return m.service.DeleteVehicleByID(m.input.VehicleID())
}

// RunCommand runs a single flow by name instead of the interactive loop.
// It returns false as ok when the flow itself did not succeed.
func (m *Menu) RunCommand(name string) (ok bool, err error) {
	switch name {
	case "list":
		m.ListVehicles()
		return true, nil
	case "add":
		return m.AddVehicle(), nil
	case "update":
		return m.UpdateVehicle(), nil
	case "delete":
		return m.DeleteVehicle(), nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
}
