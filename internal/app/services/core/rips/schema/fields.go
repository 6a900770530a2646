package schema

// Field names shared by both format versions. A field keeps its name across
// versions whenever its meaning is the same, which is what lets the converter
// carry values over by name.
const (
	FieldProviderCode           = "codigo_prestador"
	FieldHabilitationCode       = "codigo_habilitacion"
	FieldProviderName           = "razon_social"
	FieldProviderDocumentType   = "tipo_identificacion_prestador"
	FieldProviderDocumentNumber = "numero_identificacion_prestador"
	FieldInvoiceNumber          = "numero_factura"
	FieldIssueDate              = "fecha_expedicion"
	FieldPeriodStart            = "fecha_inicio"
	FieldPeriodEnd              = "fecha_final"
	FieldEntityCode             = "codigo_entidad"
	FieldEntityName             = "nombre_entidad"
	FieldContractNumber         = "numero_contrato"
	FieldBenefitPlan            = "plan_beneficios"
	FieldPolicyNumber           = "numero_poliza"
	FieldCopayment              = "valor_copago"
	FieldCommission             = "valor_comision"
	FieldDiscounts              = "valor_descuentos"
	FieldNetValue               = "valor_neto"
	FieldRemissionDate          = "fecha_remision"
	FieldFileCode               = "codigo_archivo"
	FieldRecordCount            = "total_registros"
	FieldTotalValue             = "valor_total"
	FieldSequence               = "consecutivo"

	FieldDocumentType     = "tipo_documento"
	FieldDocumentNumber   = "numero_documento"
	FieldUserType         = "tipo_usuario"
	FieldFirstLastName    = "primer_apellido"
	FieldSecondLastName   = "segundo_apellido"
	FieldFirstName        = "primer_nombre"
	FieldSecondName       = "segundo_nombre"
	FieldAge              = "edad"
	FieldAgeUnit          = "unidad_medida_edad"
	FieldGender           = "sexo"
	FieldDepartmentCode   = "codigo_departamento"
	FieldMunicipalityCode = "codigo_municipio"
	FieldZone             = "zona_residencial"
	FieldBirthDate        = "fecha_nacimiento"
	FieldCountryCode      = "codigo_pais_residencia"
	FieldDisability       = "incapacidad"

	FieldAuthorizationNumber        = "numero_autorizacion"
	FieldExternalCause              = "causa_externa"
	FieldMainDiagnosis              = "diagnostico_principal"
	FieldRelatedDiagnosis1          = "diagnostico_relacionado_1"
	FieldRelatedDiagnosis2          = "diagnostico_relacionado_2"
	FieldRelatedDiagnosis3          = "diagnostico_relacionado_3"
	FieldMainDiagnosisType          = "tipo_diagnostico_principal"
	FieldModeratingFee              = "valor_cuota_moderadora"
	FieldCollectionConcept          = "concepto_recaudo"
	FieldServiceModality            = "modalidad_grupo_servicio"
	FieldServiceGroup               = "grupo_servicios"
	FieldProfessionalDocumentType   = "tipo_documento_profesional"
	FieldProfessionalDocumentNumber = "numero_documento_profesional"

	FieldConsultationDate    = "fecha_consulta"
	FieldConsultationCode    = "codigo_consulta"
	FieldConsultationPurpose = "finalidad_consulta"
	FieldConsultationValue   = "valor_consulta"

	FieldProcedureDate    = "fecha_procedimiento"
	FieldProcedureCode    = "codigo_procedimiento"
	FieldProcedureScope   = "ambito_procedimiento"
	FieldProcedurePurpose = "finalidad_procedimiento"
	FieldAttendingStaff   = "personal_atiende"
	FieldComplication     = "diagnostico_complicacion"
	FieldSurgicalAct      = "forma_acto_quirurgico"
	FieldProcedureValue   = "valor_procedimiento"

	FieldAdmissionDate        = "fecha_ingreso"
	FieldAdmissionTime        = "hora_ingreso"
	FieldAdmissionRoute       = "via_ingreso"
	FieldAdmissionDiagnosis   = "diagnostico_ingreso"
	FieldDischargeDiagnosis   = "diagnostico_salida"
	FieldDischargeDestination = "destino_salida"
	FieldDischargeStatus      = "estado_salida"
	FieldDeathCause           = "causa_muerte"
	FieldDischargeDate        = "fecha_salida"
	FieldDischargeTime        = "hora_salida"

	FieldNewbornBirthTime = "hora_nacimiento"
	FieldGestationalAge   = "edad_gestacional"
	FieldPrenatalControl  = "control_prenatal"
	FieldWeight           = "peso"
	FieldNewbornDiagnosis = "diagnostico_recien_nacido"
	FieldDeathDate        = "fecha_muerte"
	FieldDeathTime        = "hora_muerte"

	FieldMedicationCode     = "codigo_medicamento"
	FieldMedicationType     = "tipo_medicamento"
	FieldGenericName        = "nombre_generico"
	FieldPharmaceuticalForm = "forma_farmaceutica"
	FieldConcentration      = "concentracion"
	FieldUnitOfMeasure      = "unidad_medida"
	FieldUnits              = "numero_unidades"
	FieldUnitValue          = "valor_unitario"

	FieldServiceType = "tipo_servicio"
	FieldServiceCode = "codigo_servicio"
	FieldServiceName = "nombre_servicio"
	FieldQuantity    = "cantidad"
)
