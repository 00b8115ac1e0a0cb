package sheet

// Alias tables are data, not code: every accepted spelling of a column maps
// to one canonical field name. New aliases are additive entries here.

// EmployeeAliases covers the roster sheet headers, Chinese and English.
var EmployeeAliases = map[string]string{
	"员工ID":        "employee_id",
	"员工工号":        "employee_id",
	"工号":          "employee_id",
	"employee_id": "employee_id",
	"用户名":         "username",
	"登录名":         "username",
	"username":    "username",
	"密码":          "password",
	"登录密码":        "password",
	"password":    "password",
	"姓名":          "name",
	"员工姓名":        "name",
	"name":        "name",
	"部门":          "department",
	"所属部门":        "department",
	"department":  "department",
	"职位":          "position",
	"岗位":          "position",
	"position":    "position",
	"入职日期":        "join_date",
	"入职时间":        "join_date",
	"join_date":   "join_date",
	"角色":          "role",
	"权限":          "role",
	"role":        "role",
}

// SalaryAliases covers the compensation sheet headers.
var SalaryAliases = map[string]string{
	"员工ID":               "employee_id",
	"员工工号":               "employee_id",
	"employee_id":        "employee_id",
	"年份":                 "year",
	"year":               "year",
	"月份":                 "month",
	"month":              "month",
	"年月":                 "year_month",
	"year_month":         "year_month",
	"基础工资":               "base_salary",
	"基本工资":               "base_salary",
	"base_salary":        "base_salary",
	"岗位工资":               "position_salary",
	"职位工资":               "position_salary",
	"position_salary":    "position_salary",
	"绩效工资":               "performance_salary",
	"performance_salary": "performance_salary",
	"全勤":                 "full_time",
	"全勤奖":                "full_time",
	"full_time":          "full_time",
	"其他":                 "other",
	"其他津贴":               "other",
	"other":              "other",
	"加班费":                "overtime_pay",
	"overtime_pay":       "overtime_pay",
	"奖金":                 "bonus",
	"bonus":              "bonus",
	"津贴":                 "allowance",
	"allowance":          "allowance",
	"扣除":                 "deduction",
	"扣款":                 "deduction",
	"deduction":          "deduction",
	"合计":                 "total_salary",
	"总工资":                "total_salary",
	"total_salary":       "total_salary",
	"发放日期":               "payment_date",
	"payment_date":       "payment_date",
	"备注":                 "remarks",
	"remarks":            "remarks",
}
