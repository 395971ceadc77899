package export

import (
	"strconv"
	"strings"

	"github.com/rpattn/hrapi/internal/dto"
)

func refID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}

var RegionColumns = []Column[dto.RegionDTO]{
	{"ID", func(d dto.RegionDTO) any { return d.ID }},
	{"Region Name", func(d dto.RegionDTO) any { return d.RegionName }},
}

var CountryColumns = []Column[dto.CountryDTO]{
	{"ID", func(d dto.CountryDTO) any { return d.ID }},
	{"Country Name", func(d dto.CountryDTO) any { return d.CountryName }},
	{"Region", func(d dto.CountryDTO) any {
		if d.Region == nil {
			return nil
		}
		return refID(d.Region.ID)
	}},
}

var LocationColumns = []Column[dto.LocationDTO]{
	{"ID", func(d dto.LocationDTO) any { return d.ID }},
	{"Street Address", func(d dto.LocationDTO) any { return d.StreetAddress }},
	{"Postal Code", func(d dto.LocationDTO) any { return d.PostalCode }},
	{"City", func(d dto.LocationDTO) any { return d.City }},
	{"State Province", func(d dto.LocationDTO) any { return d.StateProvince }},
	{"Country", func(d dto.LocationDTO) any {
		if d.Country == nil {
			return nil
		}
		return refID(d.Country.ID)
	}},
}

var DepartmentColumns = []Column[dto.DepartmentDTO]{
	{"ID", func(d dto.DepartmentDTO) any { return d.ID }},
	{"Department Name", func(d dto.DepartmentDTO) any { return d.DepartmentName }},
	{"Location", func(d dto.DepartmentDTO) any {
		if d.Location == nil {
			return nil
		}
		return refID(d.Location.ID)
	}},
}

var TaskColumns = []Column[dto.TaskDTO]{
	{"ID", func(d dto.TaskDTO) any { return d.ID }},
	{"Title", func(d dto.TaskDTO) any { return d.Title }},
	{"Description", func(d dto.TaskDTO) any { return d.Description }},
}

var EmployeeColumns = []Column[dto.EmployeeDTO]{
	{"ID", func(d dto.EmployeeDTO) any { return d.ID }},
	{"First Name", func(d dto.EmployeeDTO) any { return d.FirstName }},
	{"Last Name", func(d dto.EmployeeDTO) any { return d.LastName }},
	{"Email", func(d dto.EmployeeDTO) any { return d.Email }},
	{"Phone Number", func(d dto.EmployeeDTO) any { return d.PhoneNumber }},
	{"Hire Date", func(d dto.EmployeeDTO) any { return d.HireDate }},
	{"Salary", func(d dto.EmployeeDTO) any { return d.Salary }},
	{"Commission Pct", func(d dto.EmployeeDTO) any { return d.CommissionPct }},
	{"Manager", func(d dto.EmployeeDTO) any {
		if d.Manager == nil {
			return nil
		}
		return refID(d.Manager.ID)
	}},
	{"Department", func(d dto.EmployeeDTO) any {
		if d.Department == nil {
			return nil
		}
		return refID(d.Department.ID)
	}},
}

var JobColumns = []Column[dto.JobDTO]{
	{"ID", func(d dto.JobDTO) any { return d.ID }},
	{"Job Title", func(d dto.JobDTO) any { return d.JobTitle }},
	{"Min Salary", func(d dto.JobDTO) any { return d.MinSalary }},
	{"Max Salary", func(d dto.JobDTO) any { return d.MaxSalary }},
	{"Tasks", func(d dto.JobDTO) any { return taskList(d.Tasks) }},
	{"Employee", func(d dto.JobDTO) any {
		if d.Employee == nil {
			return nil
		}
		return refID(d.Employee.ID)
	}},
}

var JobHistoryColumns = []Column[dto.JobHistoryDTO]{
	{"ID", func(d dto.JobHistoryDTO) any { return d.ID }},
	{"Start Date", func(d dto.JobHistoryDTO) any { return d.StartDate }},
	{"End Date", func(d dto.JobHistoryDTO) any { return d.EndDate }},
	{"Language", func(d dto.JobHistoryDTO) any {
		if d.Language == nil {
			return nil
		}
		return string(*d.Language)
	}},
	{"Job", func(d dto.JobHistoryDTO) any {
		if d.Job == nil {
			return nil
		}
		return refID(d.Job.ID)
	}},
	{"Department", func(d dto.JobHistoryDTO) any {
		if d.Department == nil {
			return nil
		}
		return refID(d.Department.ID)
	}},
	{"Employee", func(d dto.JobHistoryDTO) any {
		if d.Employee == nil {
			return nil
		}
		return refID(d.Employee.ID)
	}},
}

// taskList renders task references as "title (#id)" joined by commas.
func taskList(tasks []dto.TaskDTO) any {
	if len(tasks) == 0 {
		return nil
	}
	parts := make([]string, len(tasks))
	for i, t := range tasks {
		var id string
		if t.ID != nil {
			id = strconv.FormatInt(*t.ID, 10)
		}
		if t.Title != nil {
			parts[i] = *t.Title + " (#" + id + ")"
		} else {
			parts[i] = "#" + id
		}
	}
	return strings.Join(parts, ", ")
}
