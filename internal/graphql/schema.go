package graphql

import (
	"fmt"
	"net/http"

	"github.com/VictorGlez97/almperms/internal/service"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
	"github.com/sirupsen/logrus"
)

// Services groups the use cases the schema resolves against
type Services struct {
	Permissions  service.PermissionService
	Assignments  service.AssignmentService
	Parameters   service.ParameterService
	Audit        service.AuditService
	Catalog      service.CatalogService
	SalesTargets service.SalesTargetService
	Roles        service.RoleService
}

// Schema represents the GraphQL schema
type Schema struct {
	schema       graphql.Schema
	permissions  service.PermissionService
	assignments  service.AssignmentService
	parameters   service.ParameterService
	audit        service.AuditService
	catalog      service.CatalogService
	salesTargets service.SalesTargetService
	roles        service.RoleService
	logger       *logrus.Logger
}

// NewSchema creates a new GraphQL schema
func NewSchema(svcs Services, logger *logrus.Logger) (*Schema, error) {
	s := &Schema{
		permissions:  svcs.Permissions,
		assignments:  svcs.Assignments,
		parameters:   svcs.Parameters,
		audit:        svcs.Audit,
		catalog:      svcs.Catalog,
		salesTargets: svcs.SalesTargets,
		roles:        svcs.Roles,
		logger:       logger,
	}

	// Define types
	assignmentType := s.defineAssignmentType()
	identifierType := s.defineIdentifierType()
	parameterType := s.defineParameterType(identifierType)
	auditType := s.defineAuditEntryType()
	personType := s.definePersonType()
	summaryType := s.definePermissionSummaryType()
	applyResultType := s.defineApplyResultType(assignmentType, parameterType)
	deleteResultType := s.defineDeleteResultType()
	salesTargetType := s.defineSalesTargetType()
	salesTargetDetailType := s.defineSalesTargetDetailType()
	savedSalesTargetType := s.defineSavedSalesTargetType(salesTargetType, salesTargetDetailType)
	statusType := s.defineStatusType()
	userType := s.defineUserType(statusType)
	legacyUserType := s.defineLegacyUserType()
	roleType := s.defineRoleType()
	rolePersonType := s.defineRolePersonType()

	// Define paginated types
	assignmentPageType := s.definePageType("AssignmentPage", assignmentType)
	parameterPageType := s.definePageType("ParameterPage", parameterType)
	identifierPageType := s.definePageType("IdentifierPage", identifierType)
	auditPageType := s.definePageType("AuditPage", auditType)
	personPageType := s.definePageType("PersonPage", personType)
	salesTargetPageType := s.definePageType("SalesTargetPage", salesTargetType)
	salesTargetDetailPageType := s.definePageType("SalesTargetDetailPage", salesTargetDetailType)
	statusPageType := s.definePageType("StatusPage", statusType)
	userPageType := s.definePageType("UserPage", userType)
	legacyUserPageType := s.definePageType("LegacyUserPage", legacyUserType)
	rolePageType := s.definePageType("RolePage", roleType)
	rolePersonPageType := s.definePageType("RolePersonPage", rolePersonType)

	// Define input types
	assignmentDraftInput := s.defineAssignmentDraftInput()
	parameterDraftInput := s.defineParameterDraftInput()
	permissionInput := s.definePermissionInput(assignmentDraftInput, parameterDraftInput)
	transferInput := s.defineTransferPermissionInput(assignmentDraftInput)
	updateAssignmentInput := s.defineUpdateAssignmentInput()
	updateParameterInput := s.defineUpdateParameterInput()
	createIdentifierInput := s.defineCreateIdentifierInput()
	createAuditInput := s.defineAuditInput("CreateAuditInput")
	updateAuditInput := s.defineAuditInput("UpdateAuditInput")
	assignmentFilterInput := s.defineAssignmentFilterInput()
	parameterFilterInput := s.defineParameterFilterInput()
	parameterOrderInput := s.defineParameterOrderInput()
	identifierFilterInput := s.defineIdentifierFilterInput()
	auditFilterInput := s.defineAuditFilterInput()
	personFilterInput := s.definePersonFilterInput()
	searchInput := s.defineSearchPermissionsInput()
	createTargetInput, updateTargetInput, createTargetDetailInput, updateTargetDetailInput, saveTargetInput := s.defineSalesTargetInputs()
	targetFilterInput, targetDetailFilterInput := s.defineSalesTargetFilterInputs()
	statusFilterInput, userFilterInput, legacyUserFilterInput, roleFilterInput, roleScopeInput, personOrderInput := s.defineAccountFilterInputs()

	// Define root query
	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"assignments": &graphql.Field{
				Type: assignmentPageType,
				Args: pageArgs(graphql.FieldConfigArgument{
					"filter": &graphql.ArgumentConfig{Type: assignmentFilterInput},
				}),
				Resolve: s.resolveAssignments,
			},
			"searchPermissions": &graphql.Field{
				Type:        graphql.NewList(summaryType),
				Description: "One labelled row per owner holding a matching assignment",
				Args: pageArgs(graphql.FieldConfigArgument{
					"filter": &graphql.ArgumentConfig{Type: searchInput},
				}),
				Resolve: s.resolveSearchPermissions,
			},
			"parameters": &graphql.Field{
				Type: parameterPageType,
				Args: pageArgs(graphql.FieldConfigArgument{
					"filter":   &graphql.ArgumentConfig{Type: parameterFilterInput},
					"order_by": &graphql.ArgumentConfig{Type: graphql.NewList(graphql.NewNonNull(parameterOrderInput))},
				}),
				Resolve: s.resolveParameters,
			},
			"identifiers": &graphql.Field{
				Type: identifierPageType,
				Args: pageArgs(graphql.FieldConfigArgument{
					"filter": &graphql.ArgumentConfig{Type: identifierFilterInput},
				}),
				Resolve: s.resolveIdentifiers,
			},
			"persons": &graphql.Field{
				Type: personPageType,
				Args: pageArgs(graphql.FieldConfigArgument{
					"filter": &graphql.ArgumentConfig{Type: personFilterInput},
				}),
				Resolve: s.resolvePersons,
			},
			"auditLog": &graphql.Field{
				Type: auditPageType,
				Args: pageArgs(graphql.FieldConfigArgument{
					"filter": &graphql.ArgumentConfig{Type: auditFilterInput},
				}),
				Resolve: s.resolveAuditLog,
			},
			"salesTargets": &graphql.Field{
				Type: salesTargetPageType,
				Args: pageArgs(graphql.FieldConfigArgument{
					"filter": &graphql.ArgumentConfig{Type: targetFilterInput},
				}),
				Resolve: s.resolveSalesTargets,
			},
			"salesTargetDetails": &graphql.Field{
				Type: salesTargetDetailPageType,
				Args: pageArgs(graphql.FieldConfigArgument{
					"filter": &graphql.ArgumentConfig{Type: targetDetailFilterInput},
				}),
				Resolve: s.resolveSalesTargetDetails,
			},
			"statuses": &graphql.Field{
				Type: statusPageType,
				Args: pageArgs(graphql.FieldConfigArgument{
					"filter": &graphql.ArgumentConfig{Type: statusFilterInput},
				}),
				Resolve: s.resolveStatuses,
			},
			"users": &graphql.Field{
				Type: userPageType,
				Args: pageArgs(graphql.FieldConfigArgument{
					"filter": &graphql.ArgumentConfig{Type: userFilterInput},
				}),
				Resolve: s.resolveUsers,
			},
			"legacyUsers": &graphql.Field{
				Type: legacyUserPageType,
				Args: pageArgs(graphql.FieldConfigArgument{
					"filter": &graphql.ArgumentConfig{Type: legacyUserFilterInput},
				}),
				Resolve: s.resolveLegacyUsers,
			},
			"roles": &graphql.Field{
				Type: rolePageType,
				Args: pageArgs(graphql.FieldConfigArgument{
					"filter": &graphql.ArgumentConfig{Type: roleFilterInput},
				}),
				Resolve: s.resolveRoles,
			},
			"rolesByPerson": &graphql.Field{
				Type: rolePageType,
				Args: pageArgs(graphql.FieldConfigArgument{
					"scope": &graphql.ArgumentConfig{Type: roleScopeInput},
				}),
				Resolve: s.resolveRolesByPerson,
			},
			"peopleWithRoles": &graphql.Field{
				Type:        rolePersonPageType,
				Description: "Persons holding a role published under the scope's parameter type",
				Args: pageArgs(graphql.FieldConfigArgument{
					"scope":    &graphql.ArgumentConfig{Type: roleScopeInput},
					"order_by": &graphql.ArgumentConfig{Type: graphql.NewList(graphql.NewNonNull(personOrderInput))},
				}),
				Resolve: s.resolvePeopleWithRoles,
			},
			"peopleByRole": &graphql.Field{
				Type: rolePersonPageType,
				Args: pageArgs(graphql.FieldConfigArgument{
					"rol_idrol": &graphql.ArgumentConfig{Type: graphql.String},
				}),
				Resolve: s.resolvePeopleByRole,
			},
		},
	})

	idArg := graphql.FieldConfigArgument{
		"par_idparameter": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
	}
	auditIDArg := graphql.FieldConfigArgument{
		"bit_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
	}
	withInput := func(args graphql.FieldConfigArgument, input graphql.Input) graphql.FieldConfigArgument {
		out := graphql.FieldConfigArgument{"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(input)}}
		for k, v := range args {
			out[k] = v
		}
		return out
	}

	// Define root mutation
	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"applyParAdmalmPerms": &graphql.Field{
				Type:        applyResultType,
				Description: "Replace an owner's warehouse permissions and parameter rows in one transaction",
				Args:        withInput(nil, permissionInput),
				Resolve:     s.resolveApplyPerms,
			},
			"applyParAdmalmTransferPerms": &graphql.Field{
				Type:        graphql.NewList(assignmentType),
				Description: "Replace an owner's transfer permissions in one transaction",
				Args:        withInput(nil, transferInput),
				Resolve:     s.resolveApplyTransferPerms,
			},
			"createAssignment": &graphql.Field{
				Type:    assignmentType,
				Args:    withInput(nil, assignmentDraftInput),
				Resolve: s.resolveCreateAssignment,
			},
			"updateAssignment": &graphql.Field{
				Type:    assignmentType,
				Args:    withInput(assignmentKeyArgs(), updateAssignmentInput),
				Resolve: s.resolveUpdateAssignment,
			},
			"deleteAssignment": &graphql.Field{
				Type:    deleteResultType,
				Args:    assignmentKeyArgs(),
				Resolve: s.resolveDeleteAssignment,
			},
			"createParameter": &graphql.Field{
				Type:    parameterType,
				Args:    withInput(nil, parameterDraftInput),
				Resolve: s.resolveCreateParameter,
			},
			"updateParameter": &graphql.Field{
				Type:    parameterType,
				Args:    withInput(idArg, updateParameterInput),
				Resolve: s.resolveUpdateParameter,
			},
			"deleteParameter": &graphql.Field{
				Type:    deleteResultType,
				Args:    idArg,
				Resolve: s.resolveDeleteParameter,
			},
			"createIdentifier": &graphql.Field{
				Type:    identifierType,
				Args:    withInput(nil, createIdentifierInput),
				Resolve: s.resolveCreateIdentifier,
			},
			"createAuditEntry": &graphql.Field{
				Type:    auditType,
				Args:    withInput(nil, createAuditInput),
				Resolve: s.resolveCreateAudit,
			},
			"updateAuditEntry": &graphql.Field{
				Type:    auditType,
				Args:    withInput(auditIDArg, updateAuditInput),
				Resolve: s.resolveUpdateAudit,
			},
			"deleteAuditEntry": &graphql.Field{
				Type:    deleteResultType,
				Args:    auditIDArg,
				Resolve: s.resolveDeleteAudit,
			},
			"saveParObjetivos": &graphql.Field{
				Type:        savedSalesTargetType,
				Description: "Write a sales target header and replace its months in one transaction",
				Args:        withInput(nil, saveTargetInput),
				Resolve:     s.resolveSaveSalesTarget,
			},
			"createSalesTarget": &graphql.Field{
				Type:    salesTargetType,
				Args:    withInput(nil, createTargetInput),
				Resolve: s.resolveCreateSalesTarget,
			},
			"updateSalesTarget": &graphql.Field{
				Type:    salesTargetType,
				Args:    withInput(salesTargetKeyArgs(), updateTargetInput),
				Resolve: s.resolveUpdateSalesTarget,
			},
			"deleteSalesTarget": &graphql.Field{
				Type:    deleteResultType,
				Args:    salesTargetKeyArgs(),
				Resolve: s.resolveDeleteSalesTarget,
			},
			"createSalesTargetDetail": &graphql.Field{
				Type:    salesTargetDetailType,
				Args:    withInput(nil, createTargetDetailInput),
				Resolve: s.resolveCreateSalesTargetDetail,
			},
			"updateSalesTargetDetail": &graphql.Field{
				Type:    salesTargetDetailType,
				Args:    withInput(salesTargetDetailKeyArgs(), updateTargetDetailInput),
				Resolve: s.resolveUpdateSalesTargetDetail,
			},
			"deleteSalesTargetDetail": &graphql.Field{
				Type:    deleteResultType,
				Args:    salesTargetDetailKeyArgs(),
				Resolve: s.resolveDeleteSalesTargetDetail,
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build graphql schema: %w", err)
	}

	s.schema = schema
	return s, nil
}

// GetSchema returns the GraphQL schema
func (s *Schema) GetSchema() graphql.Schema {
	return s.schema
}

// Handler serves the schema over HTTP; GraphiQL is enabled with pretty
func (s *Schema) Handler(pretty bool) http.Handler {
	return handler.New(&handler.Config{
		Schema:   &s.schema,
		Pretty:   pretty,
		GraphiQL: pretty,
	})
}
