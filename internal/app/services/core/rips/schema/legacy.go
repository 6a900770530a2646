package schema

import "rips-service/internal/app/models"

// Resolución 3374 de 2000 flat files.
func newLegacyRegistry() *Registry {
	return newRegistry(
		Registry{
			Version: models.FormatVersionLegacy,
			Defaults: Defaults{
				ExternalCause:        "13",
				ConsultationPurpose:  "10",
				ProcedurePurpose:     "1",
				ProcedureScope:       "1",
				DiagnosisType:        "1",
				AdmissionRoute:       "1",
				DischargeDestination: "1",
				DischargeStatus:      "1",
				MedicationType:       "1",
				OtherServiceType:     "1",
				PrenatalControl:      "2",
			},
			DocumentTypes: []string{"CC", "CE", "CD", "PA", "SC", "PE", "RC", "TI", "AS", "MS", "NU"},
			ZoneCodes:     map[string]string{"U": "U", "R": "R"},
		},
		recordType{
			code: "AF",
			kind: KindControl,
			fields: []models.FieldSpec{
				str(FieldProviderCode, 12),
				str(FieldProviderName, 60),
				str(FieldProviderDocumentType, 2),
				str(FieldProviderDocumentNumber, 20),
				str(FieldInvoiceNumber, 20),
				date(FieldIssueDate),
				date(FieldPeriodStart),
				date(FieldPeriodEnd),
				str(FieldEntityCode, 6),
				str(FieldEntityName, 30),
				str(FieldContractNumber, 15),
				str(FieldBenefitPlan, 30),
				str(FieldPolicyNumber, 10),
				num(FieldCopayment, 15),
				num(FieldCommission, 15),
				num(FieldDiscounts, 15),
				num(FieldNetValue, 15),
				date(FieldRemissionDate),
				str(FieldFileCode, 4),
				num(FieldRecordCount, 10),
			},
			valueField: FieldNetValue,
		},
		recordType{
			code: "US",
			kind: KindUsers,
			fields: []models.FieldSpec{
				str(FieldDocumentType, 2),
				str(FieldDocumentNumber, 20),
				str(FieldEntityCode, 6),
				str(FieldUserType, 1),
				str(FieldFirstLastName, 30),
				str(FieldSecondLastName, 30),
				str(FieldFirstName, 20),
				str(FieldSecondName, 20),
				num(FieldAge, 3),
				str(FieldAgeUnit, 1),
				str(FieldGender, 1),
				str(FieldDepartmentCode, 2),
				str(FieldMunicipalityCode, 3),
				str(FieldZone, 1),
				date(FieldBirthDate),
			},
		},
		recordType{
			code: "AC",
			kind: KindConsultation,
			fields: []models.FieldSpec{
				str(FieldInvoiceNumber, 20),
				str(FieldProviderCode, 12),
				str(FieldDocumentType, 2),
				str(FieldDocumentNumber, 20),
				date(FieldConsultationDate),
				str(FieldAuthorizationNumber, 15),
				str(FieldConsultationCode, 8),
				str(FieldConsultationPurpose, 2),
				str(FieldExternalCause, 2),
				str(FieldMainDiagnosis, 4),
				str(FieldRelatedDiagnosis1, 4),
				str(FieldRelatedDiagnosis2, 4),
				str(FieldRelatedDiagnosis3, 4),
				str(FieldMainDiagnosisType, 1),
				num(FieldConsultationValue, 15),
				num(FieldModeratingFee, 15),
				num(FieldNetValue, 15),
			},
			valueField: FieldNetValue,
		},
		recordType{
			code: "AP",
			kind: KindProcedure,
			fields: []models.FieldSpec{
				str(FieldInvoiceNumber, 20),
				str(FieldProviderCode, 12),
				str(FieldDocumentType, 2),
				str(FieldDocumentNumber, 20),
				date(FieldProcedureDate),
				str(FieldAuthorizationNumber, 15),
				str(FieldProcedureCode, 8),
				str(FieldProcedureScope, 1),
				str(FieldProcedurePurpose, 1),
				str(FieldAttendingStaff, 1),
				str(FieldMainDiagnosis, 4),
				str(FieldRelatedDiagnosis1, 4),
				str(FieldComplication, 4),
				str(FieldSurgicalAct, 1),
				num(FieldProcedureValue, 15),
				num(FieldModeratingFee, 15),
				num(FieldNetValue, 15),
			},
			valueField: FieldNetValue,
		},
		recordType{
			code: "AU",
			kind: KindEmergency,
			fields: []models.FieldSpec{
				str(FieldInvoiceNumber, 20),
				str(FieldProviderCode, 12),
				str(FieldDocumentType, 2),
				str(FieldDocumentNumber, 20),
				date(FieldAdmissionDate),
				str(FieldAdmissionTime, 5),
				str(FieldAuthorizationNumber, 15),
				str(FieldExternalCause, 2),
				str(FieldDischargeDiagnosis, 4),
				str(FieldRelatedDiagnosis1, 4),
				str(FieldRelatedDiagnosis2, 4),
				str(FieldRelatedDiagnosis3, 4),
				str(FieldDischargeDestination, 1),
				str(FieldDischargeStatus, 1),
				str(FieldDeathCause, 4),
				date(FieldDischargeDate),
				str(FieldDischargeTime, 5),
			},
		},
		recordType{
			code: "AH",
			kind: KindHospitalization,
			fields: []models.FieldSpec{
				str(FieldInvoiceNumber, 20),
				str(FieldProviderCode, 12),
				str(FieldDocumentType, 2),
				str(FieldDocumentNumber, 20),
				str(FieldAdmissionRoute, 1),
				date(FieldAdmissionDate),
				str(FieldAdmissionTime, 5),
				str(FieldAuthorizationNumber, 15),
				str(FieldExternalCause, 2),
				str(FieldAdmissionDiagnosis, 4),
				str(FieldDischargeDiagnosis, 4),
				str(FieldRelatedDiagnosis1, 4),
				str(FieldRelatedDiagnosis2, 4),
				str(FieldRelatedDiagnosis3, 4),
				str(FieldComplication, 4),
				str(FieldDischargeStatus, 1),
				str(FieldDeathCause, 4),
				date(FieldDischargeDate),
				str(FieldDischargeTime, 5),
			},
		},
		recordType{
			code: "AN",
			kind: KindNewborn,
			fields: []models.FieldSpec{
				str(FieldInvoiceNumber, 20),
				str(FieldProviderCode, 12),
				str(FieldDocumentType, 2),
				str(FieldDocumentNumber, 20),
				date(FieldBirthDate),
				str(FieldNewbornBirthTime, 5),
				num(FieldGestationalAge, 2),
				str(FieldPrenatalControl, 1),
				str(FieldGender, 1),
				num(FieldWeight, 4),
				str(FieldNewbornDiagnosis, 4),
				str(FieldDeathCause, 4),
				date(FieldDeathDate),
				str(FieldDeathTime, 5),
			},
		},
		recordType{
			code: "AM",
			kind: KindMedication,
			fields: []models.FieldSpec{
				str(FieldInvoiceNumber, 20),
				str(FieldProviderCode, 12),
				str(FieldDocumentType, 2),
				str(FieldDocumentNumber, 20),
				str(FieldAuthorizationNumber, 15),
				str(FieldMedicationCode, 20),
				str(FieldMedicationType, 1),
				str(FieldGenericName, 30),
				str(FieldPharmaceuticalForm, 20),
				str(FieldConcentration, 20),
				str(FieldUnitOfMeasure, 20),
				num(FieldUnits, 5),
				num(FieldUnitValue, 15),
				num(FieldTotalValue, 15),
			},
			valueField: FieldTotalValue,
		},
		recordType{
			code: "AT",
			kind: KindOtherServices,
			fields: []models.FieldSpec{
				str(FieldInvoiceNumber, 20),
				str(FieldProviderCode, 12),
				str(FieldDocumentType, 2),
				str(FieldDocumentNumber, 20),
				str(FieldAuthorizationNumber, 15),
				str(FieldServiceType, 1),
				str(FieldServiceCode, 20),
				str(FieldServiceName, 60),
				num(FieldQuantity, 5),
				num(FieldUnitValue, 15),
				num(FieldTotalValue, 15),
			},
			valueField: FieldTotalValue,
		},
	)
}
