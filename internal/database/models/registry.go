package models

// All lists every model in dependency order for schema migration
func All() []interface{} {
	return []interface{}{
		&Team{},
		&User{},
		&Role{},
		&Privilege{},
		&Module{},
		&UserRole{},
		&RolePrivilege{},
		&UserTeam{},
		&Environment{},
		&AwsAccount{},
		&Tenant{},
		&Product{},
		&Component{},
		&ProductEnvironment{},
		&TenantProduct{},
		&TenantComponent{},
	}
}
