package scan

import "github.com/uniliner/SecurityParser/internal/models"

// Catalog of sensitive path patterns for Spring-style projects. Patterns use
// glob-ish syntax (**, {a,b} alternation) and are matched anywhere in the
// path.

// CriticalPatterns almost always point at sensitive data.
var CriticalPatterns = []models.PatternGroup{
	{
		Name: "credential_files",
		Patterns: []string{
			"**/application-prod.{properties,yml,yaml}",
			"**/application-staging.{properties,yml,yaml}",
			"**/.env",
			"**/secrets.{properties,yml,yaml}",
			"**/credentials.{properties,yml,yaml}",
			"**/master.{properties,yml,yaml}",
			"**/bootstrap-prod.{properties,yml,yaml}",
			"**/application-secure.{properties,yml,yaml}",
		},
		RiskScore: 10,
		Rationale: "Direct credential storage locations",
	},
	{
		Name: "security_configurations",
		Patterns: []string{
			"**/src/**/security/SecurityConfig.java",
			"**/src/**/config/WebSecurityConfig.java",
			"**/src/**/security/JwtConfig.java",
			"**/oauth2/*.{properties,yml,yaml}",
			"**/saml/*.{properties,yml,yaml}",
			"**/src/**/security/AuthorizationServerConfig.java",
			"**/src/**/security/ResourceServerConfig.java",
			"**/src/**/security/TokenConfig.java",
			"**/src/**/security/MethodSecurityConfig.java",
			"**/src/**/security/CorsSecurityConfig.java",
			"**/src/**/security/SessionSecurityConfig.java",
			"**/src/**/security/SecurityBeanConfig.java",
		},
		RiskScore: 9,
		Rationale: "Security framework configurations",
	},
	{
		Name: "encryption_materials",
		Patterns: []string{
			"**/*.{jks,keystore,truststore}",
			"**/*.{key,pem,crt,cer,p12}",
			"**/keys/*.{properties,yml,yaml}",
			"**/*.pfx",
			"**/*.der",
			"**/keystores/*.{properties,yml,yaml}",
			"**/certificates/*.{properties,yml,yaml}",
			"**/ssl/*.{properties,yml,yaml}",
		},
		RiskScore: 10,
		Rationale: "Cryptographic materials",
	},
	{
		Name: "authentication_configurations",
		Patterns: []string{
			"**/src/**/security/LdapConfig.java",
			"**/src/**/security/OAuth2LoginConfig.java",
			"**/src/**/security/SamlConfig.java",
			"**/src/**/security/KeycloakConfig.java",
			"**/src/**/security/OpenIdConfig.java",
			"**/src/**/security/AuthenticationConfig.java",
			"**/src/**/security/MfaConfig.java",
			"**/src/**/security/SocialLoginConfig.java",
			"**/authentication/*.{properties,yml,yaml}",
			"**/src/**/security/AuthProviderConfig.java",
		},
		RiskScore: 9,
		Rationale: "Authentication mechanism configurations",
	},
}

// HighRiskPatterns might contain sensitive information.
var HighRiskPatterns = []models.PatternGroup{
	{
		Name: "database_configs",
		Patterns: []string{
			"**/resources/application.{properties,yml,yaml}",
			"**/META-INF/persistence.xml",
			"**/hibernate.cfg.xml",
			"**/flyway.{properties,yml,yaml}",
			"**/liquibase/*.{xml,yaml,sql}",
			"**/src/**/config/DataSourceConfig.java",
			"**/src/**/config/JpaConfig.java",
			"**/database/*.{properties,yml,yaml}",
			"**/jdbc/*.{properties,yml,yaml}",
		},
		RiskScore: 8,
		Rationale: "Database connection strings and credentials",
	},
	{
		Name: "service_integration",
		Patterns: []string{
			"**/integration/*.{properties,yml,yaml}",
			"**/client/*.{properties,yml,yaml}",
			"**/api/*.{properties,yml,yaml}",
			"**/src/**/client/RestTemplateConfig.java",
			"**/src/**/client/FeignClientConfig.java",
			"**/src/**/integration/WebClientConfig.java",
			"**/src/**/integration/KafkaConfig.java",
			"**/src/**/integration/RabbitConfig.java",
			"**/microservices/*.{properties,yml,yaml}",
		},
		RiskScore: 7,
		Rationale: "Service-to-service communication settings",
	},
	{
		Name: "cloud_configurations",
		Patterns: []string{
			"**/cloud/*.{properties,yml,yaml}",
			"**/aws/*.{properties,yml,yaml}",
			"**/azure/*.{properties,yml,yaml}",
			"**/gcp/*.{properties,yml,yaml}",
			"**/kubernetes/*.{properties,yml,yaml}",
			"**/docker/*.{properties,yml,yaml}",
			"**/consul/*.{properties,yml,yaml}",
			"**/eureka/*.{properties,yml,yaml}",
			"**/src/**/cloud/CloudConfig.java",
			"**/src/**/config/DiscoveryConfig.java",
		},
		RiskScore: 8,
		Rationale: "Cloud platform configurations",
	},
}

// ConfigurationLocations are directories whose contents deserve examination
// even without a pattern hit. Test resources are included on purpose: they
// tend to carry real credentials.
var ConfigurationLocations = []string{
	"src/main/resources",
	"config",
	"src/test/resources",
	"kubernetes",
	"docker",
	"terraform",
	"ansible",
	"deployment",
	"scripts",
	".github/workflows",
}

// SecurityRelatedPaths are path segments that mark a security context.
var SecurityRelatedPaths = []string{
	"security",
	"auth",
	"oauth2",
	"jwt",
	"crypto",
	"ssl",
	"tls",
	"certificates",
	"keys",
	"secrets",
	"tokens",
	"encryption",
	"authentication",
	"authorization",
	"identity",
}
