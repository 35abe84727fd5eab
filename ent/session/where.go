// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/swarmstack/swarm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTenantID, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldProjectID, v))
}

// ProjectName applies equality check predicate on the "project_name" field. It's identical to ProjectNameEQ.
func ProjectName(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldProjectName, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTitle, v))
}

// InitialPrompt applies equality check predicate on the "initial_prompt" field. It's identical to InitialPromptEQ.
func InitialPrompt(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldInitialPrompt, v))
}

// RepoURL applies equality check predicate on the "repo_url" field. It's identical to RepoURLEQ.
func RepoURL(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldRepoURL, v))
}

// Progress applies equality check predicate on the "progress" field. It's identical to ProgressEQ.
func Progress(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldProgress, v))
}

// ClarificationTurns applies equality check predicate on the "clarification_turns" field. It's identical to ClarificationTurnsEQ.
func ClarificationTurns(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldClarificationTurns, v))
}

// SpecVersion applies equality check predicate on the "spec_version" field. It's identical to SpecVersionEQ.
func SpecVersion(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSpecVersion, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldErrorMessage, v))
}

// Author applies equality check predicate on the "author" field. It's identical to AuthorEQ.
func Author(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldAuthor, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedAt, v))
}

// BuildingStartedAt applies equality check predicate on the "building_started_at" field. It's identical to BuildingStartedAtEQ.
func BuildingStartedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldBuildingStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCompletedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldTenantID, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDIsNil applies the IsNil predicate on the "project_id" field.
func ProjectIDIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldProjectID))
}

// ProjectIDNotNil applies the NotNil predicate on the "project_id" field.
func ProjectIDNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldProjectID))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldProjectID, v))
}

// ProjectNameEQ applies the EQ predicate on the "project_name" field.
func ProjectNameEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldProjectName, v))
}

// ProjectNameNEQ applies the NEQ predicate on the "project_name" field.
func ProjectNameNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldProjectName, v))
}

// ProjectNameIn applies the In predicate on the "project_name" field.
func ProjectNameIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldProjectName, vs...))
}

// ProjectNameNotIn applies the NotIn predicate on the "project_name" field.
func ProjectNameNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldProjectName, vs...))
}

// ProjectNameGT applies the GT predicate on the "project_name" field.
func ProjectNameGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldProjectName, v))
}

// ProjectNameGTE applies the GTE predicate on the "project_name" field.
func ProjectNameGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldProjectName, v))
}

// ProjectNameLT applies the LT predicate on the "project_name" field.
func ProjectNameLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldProjectName, v))
}

// ProjectNameLTE applies the LTE predicate on the "project_name" field.
func ProjectNameLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldProjectName, v))
}

// ProjectNameContains applies the Contains predicate on the "project_name" field.
func ProjectNameContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldProjectName, v))
}

// ProjectNameHasPrefix applies the HasPrefix predicate on the "project_name" field.
func ProjectNameHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldProjectName, v))
}

// ProjectNameHasSuffix applies the HasSuffix predicate on the "project_name" field.
func ProjectNameHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldProjectName, v))
}

// ProjectNameIsNil applies the IsNil predicate on the "project_name" field.
func ProjectNameIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldProjectName))
}

// ProjectNameNotNil applies the NotNil predicate on the "project_name" field.
func ProjectNameNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldProjectName))
}

// ProjectNameEqualFold applies the EqualFold predicate on the "project_name" field.
func ProjectNameEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldProjectName, v))
}

// ProjectNameContainsFold applies the ContainsFold predicate on the "project_name" field.
func ProjectNameContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldProjectName, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldTitle, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldState, vs...))
}

// SourceTypeEQ applies the EQ predicate on the "source_type" field.
func SourceTypeEQ(v SourceType) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSourceType, v))
}

// SourceTypeNEQ applies the NEQ predicate on the "source_type" field.
func SourceTypeNEQ(v SourceType) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldSourceType, v))
}

// SourceTypeIn applies the In predicate on the "source_type" field.
func SourceTypeIn(vs ...SourceType) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldSourceType, vs...))
}

// SourceTypeNotIn applies the NotIn predicate on the "source_type" field.
func SourceTypeNotIn(vs ...SourceType) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldSourceType, vs...))
}

// InitialPromptEQ applies the EQ predicate on the "initial_prompt" field.
func InitialPromptEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldInitialPrompt, v))
}

// InitialPromptNEQ applies the NEQ predicate on the "initial_prompt" field.
func InitialPromptNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldInitialPrompt, v))
}

// InitialPromptIn applies the In predicate on the "initial_prompt" field.
func InitialPromptIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldInitialPrompt, vs...))
}

// InitialPromptNotIn applies the NotIn predicate on the "initial_prompt" field.
func InitialPromptNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldInitialPrompt, vs...))
}

// InitialPromptGT applies the GT predicate on the "initial_prompt" field.
func InitialPromptGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldInitialPrompt, v))
}

// InitialPromptGTE applies the GTE predicate on the "initial_prompt" field.
func InitialPromptGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldInitialPrompt, v))
}

// InitialPromptLT applies the LT predicate on the "initial_prompt" field.
func InitialPromptLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldInitialPrompt, v))
}

// InitialPromptLTE applies the LTE predicate on the "initial_prompt" field.
func InitialPromptLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldInitialPrompt, v))
}

// InitialPromptContains applies the Contains predicate on the "initial_prompt" field.
func InitialPromptContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldInitialPrompt, v))
}

// InitialPromptHasPrefix applies the HasPrefix predicate on the "initial_prompt" field.
func InitialPromptHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldInitialPrompt, v))
}

// InitialPromptHasSuffix applies the HasSuffix predicate on the "initial_prompt" field.
func InitialPromptHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldInitialPrompt, v))
}

// InitialPromptEqualFold applies the EqualFold predicate on the "initial_prompt" field.
func InitialPromptEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldInitialPrompt, v))
}

// InitialPromptContainsFold applies the ContainsFold predicate on the "initial_prompt" field.
func InitialPromptContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldInitialPrompt, v))
}

// RepoURLEQ applies the EQ predicate on the "repo_url" field.
func RepoURLEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldRepoURL, v))
}

// RepoURLNEQ applies the NEQ predicate on the "repo_url" field.
func RepoURLNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldRepoURL, v))
}

// RepoURLIn applies the In predicate on the "repo_url" field.
func RepoURLIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldRepoURL, vs...))
}

// RepoURLNotIn applies the NotIn predicate on the "repo_url" field.
func RepoURLNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldRepoURL, vs...))
}

// RepoURLGT applies the GT predicate on the "repo_url" field.
func RepoURLGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldRepoURL, v))
}

// RepoURLGTE applies the GTE predicate on the "repo_url" field.
func RepoURLGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldRepoURL, v))
}

// RepoURLLT applies the LT predicate on the "repo_url" field.
func RepoURLLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldRepoURL, v))
}

// RepoURLLTE applies the LTE predicate on the "repo_url" field.
func RepoURLLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldRepoURL, v))
}

// RepoURLContains applies the Contains predicate on the "repo_url" field.
func RepoURLContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldRepoURL, v))
}

// RepoURLHasPrefix applies the HasPrefix predicate on the "repo_url" field.
func RepoURLHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldRepoURL, v))
}

// RepoURLHasSuffix applies the HasSuffix predicate on the "repo_url" field.
func RepoURLHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldRepoURL, v))
}

// RepoURLIsNil applies the IsNil predicate on the "repo_url" field.
func RepoURLIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldRepoURL))
}

// RepoURLNotNil applies the NotNil predicate on the "repo_url" field.
func RepoURLNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldRepoURL))
}

// RepoURLEqualFold applies the EqualFold predicate on the "repo_url" field.
func RepoURLEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldRepoURL, v))
}

// RepoURLContainsFold applies the ContainsFold predicate on the "repo_url" field.
func RepoURLContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldRepoURL, v))
}

// RepoAnalysisIsNil applies the IsNil predicate on the "repo_analysis" field.
func RepoAnalysisIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldRepoAnalysis))
}

// RepoAnalysisNotNil applies the NotNil predicate on the "repo_analysis" field.
func RepoAnalysisNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldRepoAnalysis))
}

// GatheredContextIsNil applies the IsNil predicate on the "gathered_context" field.
func GatheredContextIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldGatheredContext))
}

// GatheredContextNotNil applies the NotNil predicate on the "gathered_context" field.
func GatheredContextNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldGatheredContext))
}

// CoverageIsNil applies the IsNil predicate on the "coverage" field.
func CoverageIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldCoverage))
}

// CoverageNotNil applies the NotNil predicate on the "coverage" field.
func CoverageNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldCoverage))
}

// ProgressEQ applies the EQ predicate on the "progress" field.
func ProgressEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldProgress, v))
}

// ProgressNEQ applies the NEQ predicate on the "progress" field.
func ProgressNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldProgress, v))
}

// ProgressIn applies the In predicate on the "progress" field.
func ProgressIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldProgress, vs...))
}

// ProgressNotIn applies the NotIn predicate on the "progress" field.
func ProgressNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldProgress, vs...))
}

// ProgressGT applies the GT predicate on the "progress" field.
func ProgressGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldProgress, v))
}

// ProgressGTE applies the GTE predicate on the "progress" field.
func ProgressGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldProgress, v))
}

// ProgressLT applies the LT predicate on the "progress" field.
func ProgressLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldProgress, v))
}

// ProgressLTE applies the LTE predicate on the "progress" field.
func ProgressLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldProgress, v))
}

// ClarificationTurnsEQ applies the EQ predicate on the "clarification_turns" field.
func ClarificationTurnsEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldClarificationTurns, v))
}

// ClarificationTurnsNEQ applies the NEQ predicate on the "clarification_turns" field.
func ClarificationTurnsNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldClarificationTurns, v))
}

// ClarificationTurnsIn applies the In predicate on the "clarification_turns" field.
func ClarificationTurnsIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldClarificationTurns, vs...))
}

// ClarificationTurnsNotIn applies the NotIn predicate on the "clarification_turns" field.
func ClarificationTurnsNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldClarificationTurns, vs...))
}

// ClarificationTurnsGT applies the GT predicate on the "clarification_turns" field.
func ClarificationTurnsGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldClarificationTurns, v))
}

// ClarificationTurnsGTE applies the GTE predicate on the "clarification_turns" field.
func ClarificationTurnsGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldClarificationTurns, v))
}

// ClarificationTurnsLT applies the LT predicate on the "clarification_turns" field.
func ClarificationTurnsLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldClarificationTurns, v))
}

// ClarificationTurnsLTE applies the LTE predicate on the "clarification_turns" field.
func ClarificationTurnsLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldClarificationTurns, v))
}

// DraftSpecIsNil applies the IsNil predicate on the "draft_spec" field.
func DraftSpecIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldDraftSpec))
}

// DraftSpecNotNil applies the NotNil predicate on the "draft_spec" field.
func DraftSpecNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldDraftSpec))
}

// SpecVersionEQ applies the EQ predicate on the "spec_version" field.
func SpecVersionEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSpecVersion, v))
}

// SpecVersionNEQ applies the NEQ predicate on the "spec_version" field.
func SpecVersionNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldSpecVersion, v))
}

// SpecVersionIn applies the In predicate on the "spec_version" field.
func SpecVersionIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldSpecVersion, vs...))
}

// SpecVersionNotIn applies the NotIn predicate on the "spec_version" field.
func SpecVersionNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldSpecVersion, vs...))
}

// SpecVersionGT applies the GT predicate on the "spec_version" field.
func SpecVersionGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldSpecVersion, v))
}

// SpecVersionGTE applies the GTE predicate on the "spec_version" field.
func SpecVersionGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldSpecVersion, v))
}

// SpecVersionLT applies the LT predicate on the "spec_version" field.
func SpecVersionLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldSpecVersion, v))
}

// SpecVersionLTE applies the LTE predicate on the "spec_version" field.
func SpecVersionLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldSpecVersion, v))
}

// FinalSpecIsNil applies the IsNil predicate on the "final_spec" field.
func FinalSpecIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldFinalSpec))
}

// FinalSpecNotNil applies the NotNil predicate on the "final_spec" field.
func FinalSpecNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldFinalSpec))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldErrorMessage, v))
}

// AuthorEQ applies the EQ predicate on the "author" field.
func AuthorEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldAuthor, v))
}

// AuthorNEQ applies the NEQ predicate on the "author" field.
func AuthorNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldAuthor, v))
}

// AuthorIn applies the In predicate on the "author" field.
func AuthorIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldAuthor, vs...))
}

// AuthorNotIn applies the NotIn predicate on the "author" field.
func AuthorNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldAuthor, vs...))
}

// AuthorGT applies the GT predicate on the "author" field.
func AuthorGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldAuthor, v))
}

// AuthorGTE applies the GTE predicate on the "author" field.
func AuthorGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldAuthor, v))
}

// AuthorLT applies the LT predicate on the "author" field.
func AuthorLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldAuthor, v))
}

// AuthorLTE applies the LTE predicate on the "author" field.
func AuthorLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldAuthor, v))
}

// AuthorContains applies the Contains predicate on the "author" field.
func AuthorContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldAuthor, v))
}

// AuthorHasPrefix applies the HasPrefix predicate on the "author" field.
func AuthorHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldAuthor, v))
}

// AuthorHasSuffix applies the HasSuffix predicate on the "author" field.
func AuthorHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldAuthor, v))
}

// AuthorIsNil applies the IsNil predicate on the "author" field.
func AuthorIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldAuthor))
}

// AuthorNotNil applies the NotNil predicate on the "author" field.
func AuthorNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldAuthor))
}

// AuthorEqualFold applies the EqualFold predicate on the "author" field.
func AuthorEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldAuthor, v))
}

// AuthorContainsFold applies the ContainsFold predicate on the "author" field.
func AuthorContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldAuthor, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldUpdatedAt, v))
}

// BuildingStartedAtEQ applies the EQ predicate on the "building_started_at" field.
func BuildingStartedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldBuildingStartedAt, v))
}

// BuildingStartedAtNEQ applies the NEQ predicate on the "building_started_at" field.
func BuildingStartedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldBuildingStartedAt, v))
}

// BuildingStartedAtIn applies the In predicate on the "building_started_at" field.
func BuildingStartedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldBuildingStartedAt, vs...))
}

// BuildingStartedAtNotIn applies the NotIn predicate on the "building_started_at" field.
func BuildingStartedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldBuildingStartedAt, vs...))
}

// BuildingStartedAtGT applies the GT predicate on the "building_started_at" field.
func BuildingStartedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldBuildingStartedAt, v))
}

// BuildingStartedAtGTE applies the GTE predicate on the "building_started_at" field.
func BuildingStartedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldBuildingStartedAt, v))
}

// BuildingStartedAtLT applies the LT predicate on the "building_started_at" field.
func BuildingStartedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldBuildingStartedAt, v))
}

// BuildingStartedAtLTE applies the LTE predicate on the "building_started_at" field.
func BuildingStartedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldBuildingStartedAt, v))
}

// BuildingStartedAtIsNil applies the IsNil predicate on the "building_started_at" field.
func BuildingStartedAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldBuildingStartedAt))
}

// BuildingStartedAtNotNil applies the NotNil predicate on the "building_started_at" field.
func BuildingStartedAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldBuildingStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldCompletedAt))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTickets applies the HasEdge predicate on the "tickets" edge.
func HasTickets() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TicketsTable, TicketsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTicketsWith applies the HasEdge predicate on the "tickets" edge with a given conditions (other predicates).
func HasTicketsWith(preds ...predicate.Ticket) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newTicketsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.Message) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasApprovals applies the HasEdge predicate on the "approvals" edge.
func HasApprovals() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ApprovalsTable, ApprovalsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasApprovalsWith applies the HasEdge predicate on the "approvals" edge with a given conditions (other predicates).
func HasApprovalsWith(preds ...predicate.Approval) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newApprovalsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
