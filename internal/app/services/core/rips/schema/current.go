package schema

import "rips-service/internal/app/models"

// Resolución 2275 de 2023. Flat files plus one XML document.
func newCurrentRegistry() *Registry {
	return newRegistry(
		Registry{
			Version: models.FormatVersionCurrent,
			Defaults: Defaults{
				ExternalCause:        "38",
				ConsultationPurpose:  "15",
				ProcedurePurpose:     "15",
				DiagnosisType:        "01",
				CollectionConcept:    "05",
				FeeCollectionConcept: "02",
				ServiceModality:      "01",
				ServiceGroup:         "01",
				AdmissionRoute:       "01",
				DischargeStatus:      "01",
				MedicationType:       "01",
				OtherServiceType:     "01",
				PrenatalControl:      "0",
				CountryCode:          "170",
				Disability:           "NO",
			},
			DocumentTypes:            []string{"CC", "CE", "CD", "PA", "SC", "PE", "RC", "TI", "CN", "AS", "MS", "DE", "PT", "SI"},
			ZoneCodes:                map[string]string{"U": "01", "R": "02"},
			CombinedMunicipalityCode: true,
			SummaryCarriesValue:      true,
			EmitsXML:                 true,
		},
		recordType{
			code: "AFCT",
			kind: KindControl,
			fields: []models.FieldSpec{
				str(FieldProviderCode, 12),
				str(FieldHabilitationCode, 12),
				str(FieldProviderName, 60),
				str(FieldProviderDocumentType, 2),
				str(FieldProviderDocumentNumber, 20),
				str(FieldInvoiceNumber, 20),
				date(FieldIssueDate),
				date(FieldPeriodStart),
				date(FieldPeriodEnd),
				str(FieldEntityCode, 6),
				str(FieldEntityName, 60),
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
				num(FieldTotalValue, 15),
			},
			valueField: FieldNetValue,
		},
		recordType{
			code: "USCT",
			kind: KindUsers,
			fields: []models.FieldSpec{
				str(FieldDocumentType, 2),
				str(FieldDocumentNumber, 20),
				str(FieldUserType, 2),
				date(FieldBirthDate),
				str(FieldGender, 1),
				str(FieldCountryCode, 3),
				str(FieldMunicipalityCode, 5),
				str(FieldZone, 2),
				str(FieldDisability, 2),
				num(FieldSequence, 7),
				str(FieldFirstLastName, 60),
				str(FieldSecondLastName, 60),
				str(FieldFirstName, 60),
				str(FieldSecondName, 60),
			},
		},
		recordType{
			code: "ACCT",
			kind: KindConsultation,
			fields: []models.FieldSpec{
				str(FieldInvoiceNumber, 20),
				str(FieldProviderCode, 12),
				str(FieldDocumentType, 2),
				str(FieldDocumentNumber, 20),
				date(FieldConsultationDate),
				str(FieldAuthorizationNumber, 30),
				str(FieldConsultationCode, 6),
				str(FieldServiceModality, 2),
				str(FieldServiceGroup, 2),
				str(FieldConsultationPurpose, 2),
				str(FieldExternalCause, 2),
				str(FieldMainDiagnosis, 4),
				str(FieldRelatedDiagnosis1, 4),
				str(FieldRelatedDiagnosis2, 4),
				str(FieldRelatedDiagnosis3, 4),
				str(FieldMainDiagnosisType, 2),
				str(FieldProfessionalDocumentType, 2),
				str(FieldProfessionalDocumentNumber, 20),
				num(FieldConsultationValue, 15),
				str(FieldCollectionConcept, 2),
				num(FieldModeratingFee, 15),
				num(FieldNetValue, 15),
				num(FieldSequence, 7),
			},
			valueField: FieldNetValue,
		},
		recordType{
			code: "APCT",
			kind: KindProcedure,
			fields: []models.FieldSpec{
				str(FieldInvoiceNumber, 20),
				str(FieldProviderCode, 12),
				str(FieldDocumentType, 2),
				str(FieldDocumentNumber, 20),
				date(FieldProcedureDate),
				str(FieldAuthorizationNumber, 30),
				str(FieldProcedureCode, 6),
				str(FieldServiceModality, 2),
				str(FieldServiceGroup, 2),
				str(FieldProcedurePurpose, 2),
				str(FieldMainDiagnosis, 4),
				str(FieldRelatedDiagnosis1, 4),
				str(FieldComplication, 4),
				str(FieldProfessionalDocumentType, 2),
				str(FieldProfessionalDocumentNumber, 20),
				num(FieldProcedureValue, 15),
				str(FieldCollectionConcept, 2),
				num(FieldModeratingFee, 15),
				num(FieldNetValue, 15),
				num(FieldSequence, 7),
			},
			valueField: FieldNetValue,
		},
		recordType{
			code: "AUCT",
			kind: KindEmergency,
			fields: []models.FieldSpec{
				str(FieldInvoiceNumber, 20),
				str(FieldProviderCode, 12),
				str(FieldDocumentType, 2),
				str(FieldDocumentNumber, 20),
				date(FieldAdmissionDate),
				str(FieldAdmissionTime, 5),
				str(FieldExternalCause, 2),
				str(FieldDischargeDiagnosis, 4),
				str(FieldRelatedDiagnosis1, 4),
				str(FieldRelatedDiagnosis2, 4),
				str(FieldRelatedDiagnosis3, 4),
				str(FieldDischargeStatus, 2),
				str(FieldDeathCause, 4),
				date(FieldDischargeDate),
				str(FieldDischargeTime, 5),
				num(FieldSequence, 7),
			},
		},
		recordType{
			code: "AHCT",
			kind: KindHospitalization,
			fields: []models.FieldSpec{
				str(FieldInvoiceNumber, 20),
				str(FieldProviderCode, 12),
				str(FieldDocumentType, 2),
				str(FieldDocumentNumber, 20),
				str(FieldAdmissionRoute, 2),
				date(FieldAdmissionDate),
				str(FieldAdmissionTime, 5),
				str(FieldAuthorizationNumber, 30),
				str(FieldExternalCause, 2),
				str(FieldAdmissionDiagnosis, 4),
				str(FieldDischargeDiagnosis, 4),
				str(FieldRelatedDiagnosis1, 4),
				str(FieldRelatedDiagnosis2, 4),
				str(FieldRelatedDiagnosis3, 4),
				str(FieldComplication, 4),
				str(FieldDischargeStatus, 2),
				str(FieldDeathCause, 4),
				date(FieldDischargeDate),
				str(FieldDischargeTime, 5),
				num(FieldSequence, 7),
			},
		},
		recordType{
			code: "ANCT",
			kind: KindNewborn,
			fields: []models.FieldSpec{
				str(FieldInvoiceNumber, 20),
				str(FieldProviderCode, 12),
				str(FieldDocumentType, 2),
				str(FieldDocumentNumber, 20),
				date(FieldBirthDate),
				str(FieldNewbornBirthTime, 5),
				num(FieldGestationalAge, 2),
				str(FieldPrenatalControl, 2),
				str(FieldGender, 2),
				num(FieldWeight, 4),
				str(FieldNewbornDiagnosis, 4),
				str(FieldDeathCause, 4),
				date(FieldDeathDate),
				str(FieldDeathTime, 5),
				num(FieldSequence, 7),
			},
		},
		recordType{
			code: "AMCT",
			kind: KindMedication,
			fields: []models.FieldSpec{
				str(FieldInvoiceNumber, 20),
				str(FieldProviderCode, 12),
				str(FieldDocumentType, 2),
				str(FieldDocumentNumber, 20),
				str(FieldAuthorizationNumber, 30),
				str(FieldMedicationCode, 20),
				str(FieldMedicationType, 2),
				str(FieldGenericName, 30),
				str(FieldPharmaceuticalForm, 20),
				str(FieldConcentration, 20),
				str(FieldUnitOfMeasure, 20),
				num(FieldUnits, 10),
				num(FieldUnitValue, 15),
				num(FieldTotalValue, 15),
				str(FieldCollectionConcept, 2),
				num(FieldModeratingFee, 15),
				num(FieldSequence, 7),
			},
			valueField: FieldTotalValue,
		},
		recordType{
			code: "ATCT",
			kind: KindOtherServices,
			fields: []models.FieldSpec{
				str(FieldInvoiceNumber, 20),
				str(FieldProviderCode, 12),
				str(FieldDocumentType, 2),
				str(FieldDocumentNumber, 20),
				str(FieldAuthorizationNumber, 30),
				str(FieldServiceType, 2),
				str(FieldServiceCode, 20),
				str(FieldServiceName, 60),
				num(FieldQuantity, 5),
				num(FieldUnitValue, 15),
				num(FieldTotalValue, 15),
				str(FieldCollectionConcept, 2),
				num(FieldModeratingFee, 15),
				num(FieldSequence, 7),
			},
			valueField: FieldTotalValue,
		},
	)
}
